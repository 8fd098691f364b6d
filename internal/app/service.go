package app

import (
	"math/rand"
	"time"

	"liaptui/internal/domain"
)

// Rules are the tunable game-ending and redeal limits.
type Rules struct {
	// WinThreshold ends the game at the next scoring phase once any
	// player reaches or exceeds it.
	WinThreshold int
	// MaxRounds ends the game after this many rounds regardless of score.
	MaxRounds int
	// MaxRedealsPerRound bounds the redeal loop within a round; once hit,
	// the deal stands even with weak hands present.
	MaxRedealsPerRound int
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{WinThreshold: 50, MaxRounds: 20, MaxRedealsPerRound: 3}
}

// Service contains the phase-scoped use cases operating on a game
// aggregate. Every handler validates fully before mutating, so a rejected
// action leaves the game untouched.
type Service struct {
	rng   *rand.Rand
	rules Rules

	// deal produces four hands; swapped in tests for scripted deals.
	deal func() [domain.NumPlayers][]domain.Piece
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand, rules Rules) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Service{rng: rng, rules: rules}
	s.deal = func() [domain.NumPlayers][]domain.Piece {
		return domain.DealHands(s.rng)
	}
	return s
}

// StartGame creates the game aggregate for four seated players and enters
// the first round's preparation phase.
func (s *Service) StartGame(names [domain.NumPlayers]string, bots [domain.NumPlayers]bool) (*domain.Game, []Event, error) {
	for seat, name := range names {
		if name == "" {
			return nil, nil, domain.Validationf("empty_seat", "seat %d has no player", seat)
		}
	}

	game := domain.NewGame(names, bots)
	game.RoundNumber = 1
	events := s.beginRound(game)
	return game, events, nil
}

// beginRound resets round state, deals fresh hands and runs the weak-hand
// check. The caller has already set RoundNumber.
func (s *Service) beginRound(g *domain.Game) []Event {
	g.ResetRound()
	g.Phase = domain.PhasePreparation
	g.SetHands(s.deal())

	events := []Event{phaseEvent(g)}
	events = append(events, handEvents(g)...)
	return append(events, s.preparationOutcome(g)...)
}

// preparationOutcome either waits on weak hands or advances straight to
// declaration.
func (s *Service) preparationOutcome(g *domain.Game) []Event {
	weak := g.WeakSeats()
	if len(weak) == 0 || g.RedealsThisRound >= s.rules.MaxRedealsPerRound {
		return s.enterDeclaration(g)
	}
	return []Event{{
		Kind:    EventWeakHands,
		Payload: WeakHandsPayload{WeakSeats: weak},
	}}
}

func (s *Service) enterDeclaration(g *domain.Game) []Event {
	g.Phase = domain.PhaseDeclaration
	g.StarterSeat = g.ResolveStarter()
	g.CurrentSeat = g.StarterSeat
	return []Event{phaseEvent(g)}
}

// ConvertSeatToBot flips a disconnected player's seat to a bot, keeping
// hand, score and declaration state so the game continues.
func (s *Service) ConvertSeatToBot(g *domain.Game, name string) ([]Event, error) {
	seat := g.SeatOf(name)
	if seat < 0 {
		return nil, domain.NotFoundf("unknown_player", "no seat for %q", name)
	}
	p := g.Players[seat]
	if p.IsBot {
		return nil, nil
	}
	p.IsBot = true
	return []Event{{
		Kind:    EventSeatConverted,
		Payload: SeatConvertedPayload{Seat: seat, Name: name},
	}}, nil
}

// ReclaimSeat hands a bot-held seat back to its reconnected player.
func (s *Service) ReclaimSeat(g *domain.Game, name string) ([]Event, error) {
	seat := g.SeatOf(name)
	if seat < 0 {
		return nil, domain.NotFoundf("unknown_player", "no seat for %q", name)
	}
	p := g.Players[seat]
	if !p.IsBot {
		return nil, nil
	}
	p.IsBot = false
	return []Event{{
		Kind:    EventSeatReclaimed,
		Payload: SeatReclaimedPayload{Seat: seat, Name: name},
	}}, nil
}

// seatedActor resolves an actor name to a seat, requiring the given phase.
func seatedActor(g *domain.Game, name string, phase domain.Phase) (int, error) {
	if g.Phase != phase {
		return -1, domain.Conflictf("phase_mismatch", "action requires %s phase, game is in %s", phase, g.Phase)
	}
	seat := g.SeatOf(name)
	if seat < 0 {
		return -1, domain.NotFoundf("unknown_player", "no seat for %q", name)
	}
	return seat, nil
}

func phaseEvent(g *domain.Game) Event {
	return Event{
		Kind: EventPhaseChanged,
		Payload: PhaseChangedPayload{
			Phase:       g.Phase,
			RoundNumber: g.RoundNumber,
			StarterSeat: g.StarterSeat,
			CurrentSeat: g.CurrentSeat,
			Multiplier:  g.RedealMultiplier,
		},
	}
}

// handEvents emits one private hand event per seat.
func handEvents(g *domain.Game) []Event {
	events := make([]Event, 0, domain.NumPlayers)
	for seat, p := range g.Players {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Seat: seat,
				Name: p.Name,
				Hand: append([]domain.Piece{}, p.Hand...),
			},
			Recipients: []string{p.Name},
		})
	}
	return events
}
