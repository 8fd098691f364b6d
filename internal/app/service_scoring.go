package app

import "liaptui/internal/domain"

// enterScoring applies the round's scores and either ends the game or
// arms the ready-gated transition into the next round.
func (s *Service) enterScoring(g *domain.Game) []Event {
	g.Phase = domain.PhaseScoring
	events := []Event{phaseEvent(g)}

	scores := make([]PlayerScore, 0, domain.NumPlayers)
	for seat, p := range g.Players {
		declared := p.Declared
		if declared < 0 {
			declared = 0
		}
		base := domain.BaseScore(declared, p.Captured)
		final := base * g.RedealMultiplier
		p.Score += final
		scores = append(scores, PlayerScore{
			Seat:     seat,
			Name:     p.Name,
			Declared: declared,
			Captured: p.Captured,
			Base:     base,
			Final:    final,
			Total:    p.Score,
			Perfect:  domain.PerfectRound(declared, p.Captured),
		})
	}

	events = append(events, Event{
		Kind: EventRoundScored,
		Payload: RoundScoredPayload{
			RoundNumber: g.RoundNumber,
			Multiplier:  g.RedealMultiplier,
			Flagged:     g.RoundFlagged,
			Scores:      scores,
		},
	})

	if winners := s.gameWinners(g); len(winners) > 0 {
		g.Phase = domain.PhaseGameOver
		g.Winners = winners
		events = append(events, phaseEvent(g), Event{
			Kind: EventGameEnded,
			Payload: GameEndedPayload{
				Winners:     winners,
				FinalScores: scores,
			},
		})
		return events
	}

	g.ReadyFor = domain.TransitionRoundStart
	g.Ready = make(map[int]bool)
	return events
}

// gameWinners returns the winners if the game is over after this round's
// scoring, or nil to continue. Reaching the win threshold ends the game;
// ties at the top are reported as multiple winners. Hitting the round cap
// ends the game on the current leaders.
func (s *Service) gameWinners(g *domain.Game) []string {
	best := g.Players[0].Score
	reached := false
	for _, p := range g.Players {
		if p.Score >= s.rules.WinThreshold {
			reached = true
		}
		if p.Score > best {
			best = p.Score
		}
	}
	if !reached && g.RoundNumber < s.rules.MaxRounds {
		return nil
	}

	var winners []string
	for _, p := range g.Players {
		if p.Score == best {
			winners = append(winners, p.Name)
		}
	}
	return winners
}

// MarkReady confirms a seat for the pending scoring-to-next-round
// transition; the fourth confirmation deals the next round.
func (s *Service) MarkReady(g *domain.Game, actor, transition string) ([]Event, error) {
	seat, err := seatedActor(g, actor, domain.PhaseScoring)
	if err != nil {
		return nil, err
	}
	if g.ReadyFor == "" || transition != g.ReadyFor {
		return nil, domain.Conflictf("unknown_transition", "no pending transition %q", transition)
	}
	if g.Ready[seat] {
		return nil, domain.Conflictf("already_ready", "seat %d is already marked ready", seat)
	}

	g.Ready[seat] = true
	events := []Event{{
		Kind: EventReadyRecorded,
		Payload: ReadyRecordedPayload{
			Seat:       seat,
			Transition: transition,
			ReadyCount: len(g.Ready),
		},
	}}

	if len(g.Ready) == domain.NumPlayers {
		g.RoundNumber++
		events = append(events, s.beginRound(g)...)
	}
	return events, nil
}
