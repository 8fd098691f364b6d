package app

import (
	"testing"

	"liaptui/internal/domain"
)

func startWeakGame(t *testing.T, deals ...[domain.NumPlayers][]domain.Piece) (*Service, *domain.Game) {
	t.Helper()
	svc := newTestService(deals...)
	game, _, err := svc.StartGame(names, [domain.NumPlayers]bool{})
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	return svc, game
}

func TestRequestRedealValidation(t *testing.T) {
	svc, game := startWeakGame(t, weakHands())

	// Non-weak requester.
	if _, err := svc.RequestRedeal(game, "p1"); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict for strong hand", err)
	}
	// Unknown player.
	if _, err := svc.RequestRedeal(game, "ghost"); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}

	events, err := svc.RequestRedeal(game, "p0")
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	if game.Redeal == nil {
		t.Fatal("session should be open")
	}
	opened := events[0].Payload.(RedealOpenedPayload)
	if opened.RequesterSeat != 0 {
		t.Fatalf("requester = %d, want 0", opened.RequesterSeat)
	}
	if len(opened.AutoAccepted) != 1 || opened.AutoAccepted[0] != 0 {
		t.Fatalf("auto accepted = %v, want [0]", opened.AutoAccepted)
	}
	if len(opened.PendingSeats) != 3 {
		t.Fatalf("pending = %v, want three seats", opened.PendingSeats)
	}

	// A second request while the vote runs conflicts.
	if _, err := svc.RequestRedeal(game, "p0"); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict for active session", err)
	}
}

func TestDeclineCancelsRedeal(t *testing.T) {
	svc, game := startWeakGame(t, weakHands())
	events, err := svc.RequestRedeal(game, "p0")
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	redealID := events[0].Payload.(RedealOpenedPayload).RedealID

	handsBefore := append([]domain.Piece{}, game.Players[0].Hand...)
	events, err = svc.DeclineRedeal(game, "p2", redealID)
	if err != nil {
		t.Fatalf("decline error: %v", err)
	}

	if game.Redeal != nil {
		t.Fatal("session should be destroyed")
	}
	if game.RedealMultiplier != 1 {
		t.Fatal("a declined redeal must not raise the multiplier")
	}
	if game.Phase != domain.PhaseDeclaration {
		t.Fatalf("phase = %s, want declaration", game.Phase)
	}
	if game.StarterSeat != 2 {
		t.Fatalf("starter = %d, want decliner seat 2", game.StarterSeat)
	}
	if len(game.Players[0].Hand) != len(handsBefore) || game.Players[0].Hand[0] != handsBefore[0] {
		t.Fatal("deal must be kept as-is after a decline")
	}
	if countEvents(events, EventRedealCancelled) != 1 {
		t.Fatal("expected cancellation event")
	}
}

func TestUnanimousAcceptExecutesRedeal(t *testing.T) {
	svc, game := startWeakGame(t, weakHands(), strongHands())
	events, _ := svc.RequestRedeal(game, "p0")
	redealID := events[0].Payload.(RedealOpenedPayload).RedealID

	for _, actor := range []string{"p1", "p2"} {
		if _, err := svc.AcceptRedeal(game, actor, redealID); err != nil {
			t.Fatalf("%s accept error: %v", actor, err)
		}
	}
	events, err := svc.AcceptRedeal(game, "p3", redealID)
	if err != nil {
		t.Fatalf("final accept error: %v", err)
	}

	if game.RedealMultiplier != 2 {
		t.Fatalf("multiplier = %d, want 2 after redeal", game.RedealMultiplier)
	}
	if game.Redeal != nil {
		t.Fatal("session should be destroyed after execution")
	}
	if countEvents(events, EventRedealExecuted) != 1 || countEvents(events, EventHandDealt) != 4 {
		t.Fatal("expected redeal execution with fresh hands")
	}
	// The scripted second deal has no weak hands, so play proceeds.
	if game.Phase != domain.PhaseDeclaration {
		t.Fatalf("phase = %s, want declaration", game.Phase)
	}
}

func TestRedealVoteConflicts(t *testing.T) {
	svc, game := startWeakGame(t, weakHands())
	events, _ := svc.RequestRedeal(game, "p0")
	redealID := events[0].Payload.(RedealOpenedPayload).RedealID

	// Stale token.
	if _, err := svc.AcceptRedeal(game, "p1", "stale"); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict for stale token", err)
	}
	// Auto-accepted weak seat cannot vote again.
	if _, err := svc.AcceptRedeal(game, "p0", redealID); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict for duplicate vote", err)
	}
	if _, err := svc.AcceptRedeal(game, "p1", redealID); err != nil {
		t.Fatalf("accept error: %v", err)
	}
	if _, err := svc.AcceptRedeal(game, "p1", redealID); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict for second vote", err)
	}
}

func TestVoteTimeoutIsImplicitDecline(t *testing.T) {
	svc, game := startWeakGame(t, weakHands())
	if _, err := svc.TimeoutPendingVote(game); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict with no vote running", err)
	}

	events, _ := svc.RequestRedeal(game, "p0")
	redealID := events[0].Payload.(RedealOpenedPayload).RedealID
	if _, err := svc.AcceptRedeal(game, "p1", redealID); err != nil {
		t.Fatalf("accept error: %v", err)
	}

	events, err := svc.TimeoutPendingVote(game)
	if err != nil {
		t.Fatalf("timeout error: %v", err)
	}

	vote := events[0].Payload.(RedealVotePayload)
	if vote.Accept || !vote.Implicit || vote.Seat != 2 {
		t.Fatalf("vote = %+v, want implicit decline by first pending seat 2", vote)
	}
	if game.StarterSeat != 2 || game.Phase != domain.PhaseDeclaration {
		t.Fatal("timed-out voter becomes starter and play proceeds")
	}
	if game.RedealMultiplier != 1 {
		t.Fatal("timeout decline must not raise the multiplier")
	}
}

func TestRedealConvergesUnderRepeatedWeakDeals(t *testing.T) {
	// Three weak deals in a row, then a clean one. The per-round cap stops
	// the loop even if the deck stays hostile.
	svc, game := startWeakGame(t, weakHands(), weakHands(), weakHands(), strongHands())

	for i := 0; i < svc.rules.MaxRedealsPerRound; i++ {
		if game.Phase != domain.PhasePreparation {
			break
		}
		events, err := svc.RequestRedeal(game, "p0")
		if err != nil {
			t.Fatalf("redeal %d request error: %v", i, err)
		}
		redealID := events[0].Payload.(RedealOpenedPayload).RedealID
		for _, actor := range []string{"p1", "p2", "p3"} {
			if _, err := svc.AcceptRedeal(game, actor, redealID); err != nil {
				t.Fatalf("redeal %d accept error: %v", i, err)
			}
		}
	}

	if game.Phase != domain.PhaseDeclaration {
		t.Fatalf("phase = %s, want declaration after bounded redeals", game.Phase)
	}
	if game.RedealsThisRound > svc.rules.MaxRedealsPerRound {
		t.Fatalf("redeals = %d exceeds cap", game.RedealsThisRound)
	}
	if game.RedealMultiplier != game.RedealsThisRound+1 {
		t.Fatalf("multiplier = %d, want %d", game.RedealMultiplier, game.RedealsThisRound+1)
	}
}

func TestRedealCapBlocksFurtherRequests(t *testing.T) {
	svc, game := startWeakGame(t, weakHands(), weakHands(), weakHands(), weakHands())

	for i := 0; i < svc.rules.MaxRedealsPerRound; i++ {
		events, err := svc.RequestRedeal(game, "p0")
		if err != nil {
			t.Fatalf("redeal %d request error: %v", i, err)
		}
		redealID := events[0].Payload.(RedealOpenedPayload).RedealID
		for _, actor := range []string{"p1", "p2", "p3"} {
			if _, err := svc.AcceptRedeal(game, actor, redealID); err != nil {
				t.Fatalf("redeal %d accept error: %v", i, err)
			}
		}
	}

	// The cap forces the last weak deal to stand.
	if game.Phase != domain.PhaseDeclaration {
		t.Fatalf("phase = %s, want declaration at the cap", game.Phase)
	}
}
