package app

import "liaptui/internal/domain"

// Declare records a player's pile-count declaration. Declarations run in
// seat rotation from the round starter; the fourth declaration may not
// bring the total to exactly eight.
func (s *Service) Declare(g *domain.Game, actor string, declared int) ([]Event, error) {
	seat, err := seatedActor(g, actor, domain.PhaseDeclaration)
	if err != nil {
		return nil, err
	}
	if seat != g.CurrentSeat {
		return nil, domain.Conflictf("not_your_turn", "seat %d declares next, not seat %d", g.CurrentSeat, seat)
	}
	if declared < 0 || declared > domain.HandSize {
		return nil, domain.Validationf("pile_count_out_of_range", "declaration %d outside [0,%d]", declared, domain.HandSize)
	}
	p := g.Players[seat]
	if declared == 0 && p.ZeroStreak >= domain.MaxZeroStreak {
		return nil, domain.Validationf("zero_streak_limit", "cannot declare 0 after %d consecutive zero rounds", p.ZeroStreak)
	}
	if g.DeclaredCount == domain.NumPlayers-1 && g.DeclarationTotal()+declared == domain.HandSize {
		return nil, domain.Conflictf("declaration_total_eight", "last declaration may not bring the total to exactly %d", domain.HandSize)
	}

	p.Declared = declared
	if declared == 0 {
		p.ZeroStreak++
	} else {
		p.ZeroStreak = 0
	}
	g.DeclaredCount++

	nextSeat := -1
	if g.DeclaredCount < domain.NumPlayers {
		g.CurrentSeat = domain.NextSeat(g.CurrentSeat)
		nextSeat = g.CurrentSeat
	}

	events := []Event{{
		Kind: EventDeclarationMade,
		Payload: DeclarationMadePayload{
			Seat:     seat,
			Declared: declared,
			Total:    g.DeclarationTotal(),
			NextSeat: nextSeat,
		},
	}}

	if g.DeclaredCount == domain.NumPlayers {
		g.Phase = domain.PhaseTurn
		g.CurrentSeat = g.StarterSeat
		events = append(events, phaseEvent(g))
	}
	return events, nil
}
