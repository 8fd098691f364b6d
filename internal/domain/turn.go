package domain

// TurnPlay records one player's submission within a trick.
type TurnPlay struct {
	Seat   int
	Pieces []Piece
	Play   Play
}

// TurnResult is the outcome of a resolved trick.
type TurnResult struct {
	WinnerSeat  int
	WinningPlay Play
	// PileCount is the total number of pieces submitted across all four
	// plays; the winner captures all of them.
	PileCount int
}

// ResolveTurn finds the winner of a completed trick of exactly four plays.
// The first-seen play retains priority on exact ties, so later equal plays
// never overtake. A trick with no valid play is an invariant violation:
// the round must be forced into scoring, never silently defaulted.
func ResolveTurn(plays []TurnPlay) (TurnResult, error) {
	if len(plays) != NumPlayers {
		return TurnResult{}, Invariantf("incomplete_trick", "trick resolved with %d plays, want %d", len(plays), NumPlayers)
	}

	pile := 0
	winner := -1
	var best Play
	for i, tp := range plays {
		pile += len(tp.Pieces)
		if !tp.Play.Valid() {
			continue
		}
		if winner == -1 || Beats(tp.Play, best) {
			winner = i
			best = tp.Play
		}
	}

	if winner == -1 {
		return TurnResult{}, Invariantf("no_valid_play", "all %d plays in the trick are invalid", NumPlayers)
	}

	return TurnResult{
		WinnerSeat:  plays[winner].Seat,
		WinningPlay: best,
		PileCount:   pile,
	}, nil
}
