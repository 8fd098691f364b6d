package app

import (
	"math/rand"
	"testing"

	"liaptui/internal/domain"
)

func pieces(kinds ...domain.PieceKind) []domain.Piece {
	out := make([]domain.Piece, len(kinds))
	for i, k := range kinds {
		out[i] = domain.Piece{Kind: k}
	}
	return out
}

// strongHands is a full-deck partition where every seat holds at least one
// piece above the weak-hand threshold. Seat 0 holds the red general.
func strongHands() [domain.NumPlayers][]domain.Piece {
	return [domain.NumPlayers][]domain.Piece{
		pieces(domain.GeneralRed, domain.AdvisorRed, domain.ChariotRed, domain.ChariotRed, domain.HorseRed, domain.HorseRed, domain.SoldierRed, domain.SoldierRed),
		pieces(domain.GeneralBlack, domain.AdvisorBlack, domain.ChariotBlack, domain.ChariotBlack, domain.HorseBlack, domain.HorseBlack, domain.SoldierBlack, domain.SoldierBlack),
		pieces(domain.AdvisorRed, domain.ElephantRed, domain.CannonRed, domain.CannonRed, domain.ElephantBlack, domain.SoldierRed, domain.SoldierRed, domain.SoldierRed),
		pieces(domain.AdvisorBlack, domain.ElephantRed, domain.CannonBlack, domain.CannonBlack, domain.ElephantBlack, domain.SoldierBlack, domain.SoldierBlack, domain.SoldierBlack),
	}
}

// weakHands is a full-deck partition where only seat 0 is weak.
func weakHands() [domain.NumPlayers][]domain.Piece {
	return [domain.NumPlayers][]domain.Piece{
		pieces(domain.ElephantBlack, domain.ChariotBlack, domain.HorseBlack, domain.CannonBlack, domain.CannonBlack, domain.SoldierBlack, domain.SoldierBlack, domain.SoldierBlack),
		pieces(domain.GeneralRed, domain.AdvisorRed, domain.ChariotRed, domain.HorseRed, domain.CannonRed, domain.SoldierRed, domain.SoldierRed, domain.SoldierRed),
		pieces(domain.GeneralBlack, domain.AdvisorRed, domain.ChariotRed, domain.HorseRed, domain.CannonRed, domain.SoldierRed, domain.SoldierRed, domain.SoldierBlack),
		pieces(domain.AdvisorBlack, domain.AdvisorBlack, domain.ElephantRed, domain.ElephantRed, domain.ElephantBlack, domain.ChariotBlack, domain.HorseBlack, domain.SoldierBlack),
	}
}

var names = [domain.NumPlayers]string{"p0", "p1", "p2", "p3"}

// newTestService returns a service whose dealer replays the given hands in
// order, sticking on the last one.
func newTestService(deals ...[domain.NumPlayers][]domain.Piece) *Service {
	svc := NewService(rand.New(rand.NewSource(1)), DefaultRules())
	if len(deals) > 0 {
		i := 0
		svc.deal = func() [domain.NumPlayers][]domain.Piece {
			h := deals[i]
			if i < len(deals)-1 {
				i++
			}
			// Hands are consumed by the game; hand out copies.
			var out [domain.NumPlayers][]domain.Piece
			for seat := range h {
				out[seat] = append([]domain.Piece{}, h[seat]...)
			}
			return out
		}
	}
	return svc
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func lastPhase(t *testing.T, events []Event) domain.Phase {
	t.Helper()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == EventPhaseChanged {
			return events[i].Payload.(PhaseChangedPayload).Phase
		}
	}
	t.Fatal("no phase event emitted")
	return ""
}

func TestStartGameNoWeakHandsSkipsRedeal(t *testing.T) {
	svc := newTestService(strongHands())

	game, events, err := svc.StartGame(names, [domain.NumPlayers]bool{})
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}

	if game.Phase != domain.PhaseDeclaration {
		t.Fatalf("phase = %s, want declaration", game.Phase)
	}
	if game.StarterSeat != 0 {
		t.Fatalf("starter = %d, want red general holder seat 0", game.StarterSeat)
	}
	if game.RedealMultiplier != 1 {
		t.Fatalf("multiplier = %d, want 1", game.RedealMultiplier)
	}
	if countEvents(events, EventHandDealt) != 4 {
		t.Fatal("expected one private hand event per seat")
	}
	for _, kind := range []EventKind{EventWeakHands, EventRedealOpened, EventRedealVote} {
		if countEvents(events, kind) != 0 {
			t.Fatalf("unexpected %s event without weak hands", kind)
		}
	}
	if lastPhase(t, events) != domain.PhaseDeclaration {
		t.Fatal("expected declaration phase event")
	}
}

func TestStartGameWeakHandsWaitInPreparation(t *testing.T) {
	svc := newTestService(weakHands())

	game, events, err := svc.StartGame(names, [domain.NumPlayers]bool{})
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}

	if game.Phase != domain.PhasePreparation {
		t.Fatalf("phase = %s, want preparation", game.Phase)
	}
	if countEvents(events, EventWeakHands) != 1 {
		t.Fatal("expected weak hands event")
	}
}

func TestStartGameRejectsEmptySeat(t *testing.T) {
	svc := newTestService(strongHands())
	_, _, err := svc.StartGame([domain.NumPlayers]string{"p0", "", "p2", "p3"}, [domain.NumPlayers]bool{})
	if err == nil || domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestConvertAndReclaimSeat(t *testing.T) {
	svc := newTestService(strongHands())
	game, _, _ := svc.StartGame(names, [domain.NumPlayers]bool{})

	hand := append([]domain.Piece{}, game.Players[1].Hand...)
	events, err := svc.ConvertSeatToBot(game, "p1")
	if err != nil || countEvents(events, EventSeatConverted) != 1 {
		t.Fatalf("convert: events=%v err=%v", events, err)
	}
	if !game.Players[1].IsBot {
		t.Fatal("seat 1 should now be a bot")
	}
	if len(game.Players[1].Hand) != len(hand) {
		t.Fatal("conversion must preserve the hand")
	}

	// Converting twice is a no-op.
	events, err = svc.ConvertSeatToBot(game, "p1")
	if err != nil || len(events) != 0 {
		t.Fatalf("second convert: events=%v err=%v", events, err)
	}

	events, err = svc.ReclaimSeat(game, "p1")
	if err != nil || countEvents(events, EventSeatReclaimed) != 1 {
		t.Fatalf("reclaim: events=%v err=%v", events, err)
	}
	if game.Players[1].IsBot {
		t.Fatal("seat 1 should be human again")
	}

	if _, err := svc.ConvertSeatToBot(game, "ghost"); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
}
