package domain

import "testing"

func testGame() *Game {
	return NewGame([NumPlayers]string{"p0", "p1", "p2", "p3"}, [NumPlayers]bool{})
}

func TestWeakSeats(t *testing.T) {
	g := testGame()
	g.Players[0].Hand = pieces(ElephantBlack, ChariotBlack, HorseRed, SoldierBlack) // max 9: weak
	g.Players[1].Hand = pieces(ElephantRed, SoldierRed)                             // max 10: strong
	g.Players[2].Hand = pieces(SoldierBlack, SoldierBlack)                          // weak
	g.Players[3].Hand = pieces(GeneralRed)

	weak := g.WeakSeats()
	if len(weak) != 2 || weak[0] != 0 || weak[1] != 2 {
		t.Fatalf("weak seats = %v, want [0 2]", weak)
	}
}

func TestResolveStarterRedGeneralHolder(t *testing.T) {
	g := testGame()
	g.Players[2].Hand = pieces(GeneralRed, SoldierBlack)
	if got := g.ResolveStarter(); got != 2 {
		t.Fatalf("starter = %d, want 2", got)
	}

	g.ClaimStart(3)
	if got := g.ResolveStarter(); got != 3 {
		t.Fatalf("starter with claim = %d, want 3", got)
	}
}

func TestResetRoundKeepsGameScopedState(t *testing.T) {
	g := testGame()
	g.RedealMultiplier = 3
	g.RedealsThisRound = 2
	g.RoundNumber = 4
	g.Players[0].Score = 21
	g.Players[0].ZeroStreak = 2
	g.Players[0].Declared = 5
	g.Players[0].Captured = 3
	g.Players[0].Hand = pieces(GeneralRed)
	g.Redeal = NewRedealSession(0, []int{0})

	g.ResetRound()

	if g.RedealMultiplier != 1 || g.RedealsThisRound != 0 || g.Redeal != nil {
		t.Fatal("round-scoped redeal state should reset")
	}
	if g.RoundNumber != 4 {
		t.Fatal("round number is not reset by ResetRound")
	}
	p := g.Players[0]
	if p.Score != 21 || p.ZeroStreak != 2 {
		t.Fatal("game-scoped player state should persist")
	}
	if p.Declared != -1 || p.Captured != 0 || len(p.Hand) != 0 {
		t.Fatal("round-scoped player state should reset")
	}
}

func TestPiecesAtValidation(t *testing.T) {
	p := &Player{Hand: pieces(GeneralRed, HorseBlack, SoldierRed)}

	if _, err := p.PiecesAt([]int{0, 3}); err == nil {
		t.Fatal("expected out-of-range error")
	}
	if _, err := p.PiecesAt([]int{1, 1}); err == nil {
		t.Fatal("expected duplicate index error")
	}
	got, err := p.PiecesAt([]int{2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Kind != SoldierRed || got[1].Kind != GeneralRed {
		t.Fatalf("pieces = %v", got)
	}
}

func TestRemoveAt(t *testing.T) {
	p := &Player{Hand: pieces(GeneralRed, HorseBlack, SoldierRed, SoldierRed)}
	p.RemoveAt([]int{1, 3})
	if len(p.Hand) != 2 || p.Hand[0].Kind != GeneralRed || p.Hand[1].Kind != SoldierRed {
		t.Fatalf("hand after removal = %v", p.Hand)
	}
}

func TestHasValidPlay(t *testing.T) {
	hand := pieces(GeneralRed, ChariotRed, HorseBlack, SoldierRed, SoldierBlack)

	if !HasValidPlay(hand, 1) {
		t.Fatal("singles are always available")
	}
	if HasValidPlay(hand, 2) {
		t.Fatal("no same-family same-color pair in hand")
	}

	withPair := append(append([]Piece{}, hand...), Piece{Kind: ChariotRed})
	if !HasValidPlay(withPair, 2) {
		t.Fatal("chariot pair should be found")
	}

	straight := pieces(ChariotBlack, HorseBlack, CannonBlack, SoldierRed)
	if !HasValidPlay(straight, 3) {
		t.Fatal("lower straight should be found")
	}
}

func TestRedealSessionVotes(t *testing.T) {
	s := NewRedealSession(1, []int{1, 3})

	if !s.HasVoted(1) || !s.HasVoted(3) {
		t.Fatal("weak seats should be auto-accepted")
	}
	if s.AllAccepted() {
		t.Fatal("seats 0 and 2 have not voted")
	}
	pending := s.PendingSeats()
	if len(pending) != 2 || pending[0] != 0 || pending[1] != 2 {
		t.Fatalf("pending = %v, want [0 2]", pending)
	}

	s.Votes[0] = true
	s.Votes[2] = true
	if !s.AllAccepted() {
		t.Fatal("all four accepts should resolve the vote")
	}
}
