package app

import (
	"testing"

	"liaptui/internal/domain"
)

// startDeclaration deals strong hands so the game lands in declaration
// with seat 0 as starter.
func startDeclaration(t *testing.T) (*Service, *domain.Game) {
	t.Helper()
	svc := newTestService(strongHands())
	game, _, err := svc.StartGame(names, [domain.NumPlayers]bool{})
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	if game.Phase != domain.PhaseDeclaration {
		t.Fatalf("phase = %s, want declaration", game.Phase)
	}
	return svc, game
}

func TestDeclareRotationAndTransition(t *testing.T) {
	svc, game := startDeclaration(t)

	for i, declared := range []int{2, 2, 2, 3} {
		actor := game.Players[game.CurrentSeat].Name
		events, err := svc.Declare(game, actor, declared)
		if err != nil {
			t.Fatalf("declaration %d error: %v", i, err)
		}
		if countEvents(events, EventDeclarationMade) != 1 {
			t.Fatalf("declaration %d: missing event", i)
		}
	}

	if game.Phase != domain.PhaseTurn {
		t.Fatalf("phase = %s, want turn after four declarations", game.Phase)
	}
	if game.CurrentSeat != game.StarterSeat {
		t.Fatal("first trick is led by the round starter")
	}
}

func TestDeclareOutOfTurn(t *testing.T) {
	svc, game := startDeclaration(t)

	// Seat 0 declares first; seat 2 must wait.
	if _, err := svc.Declare(game, "p2", 1); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict", err)
	}
	if game.Players[2].Declared != -1 {
		t.Fatal("rejected declaration must not stick")
	}
}

func TestDeclareOutOfRangeThenResubmit(t *testing.T) {
	svc, game := startDeclaration(t)

	_, err := svc.Declare(game, "p0", 9)
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("err = %v, want validation", err)
	}
	if game.Players[0].Declared != -1 || game.DeclaredCount != 0 {
		t.Fatal("state must be unchanged after rejection")
	}

	// Same player may resubmit a legal value.
	if _, err := svc.Declare(game, "p0", 0); err != nil {
		t.Fatalf("resubmission error: %v", err)
	}
	if game.Players[0].Declared != 0 || game.Players[0].ZeroStreak != 1 {
		t.Fatal("legal resubmission should be recorded")
	}
}

func TestDeclareZeroStreakLimit(t *testing.T) {
	svc, game := startDeclaration(t)
	game.Players[0].ZeroStreak = domain.MaxZeroStreak

	if _, err := svc.Declare(game, "p0", 0); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("err = %v, want validation for third zero in a row", err)
	}
	if _, err := svc.Declare(game, "p0", 1); err != nil {
		t.Fatalf("non-zero declaration error: %v", err)
	}
	if game.Players[0].ZeroStreak != 0 {
		t.Fatal("non-zero declaration resets the streak")
	}
}

func TestLastDeclarationMayNotTotalEight(t *testing.T) {
	svc, game := startDeclaration(t)

	for _, declared := range []int{2, 2, 1} {
		actor := game.Players[game.CurrentSeat].Name
		if _, err := svc.Declare(game, actor, declared); err != nil {
			t.Fatalf("setup declaration error: %v", err)
		}
	}

	// Running total is 5; 3 would make it exactly 8.
	if _, err := svc.Declare(game, "p3", 3); domain.KindOf(err) != domain.KindConflict {
		t.Fatalf("err = %v, want conflict for total of eight", err)
	}
	if game.Phase != domain.PhaseDeclaration {
		t.Fatal("rejected declaration must not advance the phase")
	}

	if _, err := svc.Declare(game, "p3", 4); err != nil {
		t.Fatalf("legal final declaration error: %v", err)
	}
	if game.Phase != domain.PhaseTurn {
		t.Fatal("total of nine is allowed and completes the phase")
	}
}

func TestDeclareTotalEightAllowedMidRotation(t *testing.T) {
	svc, game := startDeclaration(t)

	// Only the fourth declaration is constrained: 4+4 = 8 after two is fine.
	for _, declared := range []int{4, 4} {
		actor := game.Players[game.CurrentSeat].Name
		if _, err := svc.Declare(game, actor, declared); err != nil {
			t.Fatalf("declaration error: %v", err)
		}
	}
	if _, err := svc.Declare(game, "p2", 0); err != nil {
		t.Fatalf("third declaration error: %v", err)
	}
}
