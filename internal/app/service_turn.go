package app

import "liaptui/internal/domain"

// PlayPieces handles one player's trick submission by hand indices. The
// trick leader's play must classify valid and fixes the piece count for
// the rest of the trick; a follower holding no valid combination of that
// count is allowed a forced discard, which is recorded but cannot win.
func (s *Service) PlayPieces(g *domain.Game, actor string, indices []int) ([]Event, error) {
	seat, err := seatedActor(g, actor, domain.PhaseTurn)
	if err != nil {
		return nil, err
	}
	if seat != g.CurrentSeat {
		return nil, domain.Conflictf("not_your_turn", "seat %d plays next, not seat %d", g.CurrentSeat, seat)
	}
	if len(indices) < 1 || len(indices) > 6 {
		return nil, domain.Validationf("piece_count_out_of_range", "a play holds 1 to 6 pieces, got %d", len(indices))
	}

	p := g.Players[seat]
	pieces, err := p.PiecesAt(indices)
	if err != nil {
		return nil, err
	}

	leader := len(g.TurnPlays) == 0
	play := domain.Classify(pieces)
	forced := false
	if leader {
		if !play.Valid() {
			return nil, domain.Validationf("invalid_play", "the trick leader must play a valid combination")
		}
	} else {
		if len(pieces) != g.RequiredCount {
			return nil, domain.Validationf("wrong_piece_count", "this trick requires %d pieces, got %d", g.RequiredCount, len(pieces))
		}
		if !play.Valid() {
			if domain.HasValidPlay(p.Hand, g.RequiredCount) {
				return nil, domain.Validationf("invalid_play", "a valid %d-piece play is available and must be used", g.RequiredCount)
			}
			forced = true
		}
	}

	// Validation complete; mutate.
	p.RemoveAt(indices)
	if leader {
		g.RequiredCount = len(pieces)
	}
	g.TurnPlays = append(g.TurnPlays, domain.TurnPlay{Seat: seat, Pieces: pieces, Play: play})
	g.CurrentSeat = domain.NextSeat(g.CurrentSeat)

	events := []Event{{
		Kind: EventPiecesPlayed,
		Payload: PiecesPlayedPayload{
			Seat:       seat,
			Pieces:     pieces,
			PlayType:   play.Type,
			Forced:     forced,
			PieceCount: len(pieces),
			NextSeat:   g.CurrentSeat,
		},
	}}

	if len(g.TurnPlays) == domain.NumPlayers {
		events = append(events, s.resolveTrick(g)...)
	}
	return events, nil
}

// resolveTrick finishes a four-play trick: the winner captures the pile
// and leads the next trick. An unresolvable trick flags the round and
// forces scoring rather than inventing a winner.
func (s *Service) resolveTrick(g *domain.Game) []Event {
	result, err := domain.ResolveTurn(g.TurnPlays)
	g.TurnPlays = nil
	g.RequiredCount = 0

	if err != nil {
		g.RoundFlagged = true
		events := []Event{{
			Kind:    EventRoundFlagged,
			Payload: RoundFlaggedPayload{Reason: err.Error()},
		}}
		return append(events, s.enterScoring(g)...)
	}

	g.TricksPlayed++
	winner := g.Players[result.WinnerSeat]
	winner.Captured += result.PileCount
	g.CurrentSeat = result.WinnerSeat

	events := []Event{{
		Kind: EventTrickResolved,
		Payload: TrickResolvedPayload{
			WinnerSeat:    result.WinnerSeat,
			WinningPieces: result.WinningPlay.Pieces,
			PileCount:     result.PileCount,
			TricksPlayed:  g.TricksPlayed,
		},
	}}

	if g.HandsEmpty() {
		events = append(events, s.enterScoring(g)...)
	}
	return events
}
