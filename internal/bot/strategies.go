package bot

import (
	"liaptui/internal/domain"
)

// StandardBot plays a simple value heuristic: declare one pile per high
// piece, spend the cheapest play that still wins a trick, and dump the
// lowest pieces when it cannot win.
type StandardBot struct {
	// cautious shifts the declaration and redeal thresholds up, so the
	// bot undersells its hand and redeals less.
	cautious bool
}

func (b *StandardBot) DecideRedeal(game *domain.Game, seat int) bool {
	hand := game.Players[seat].Hand
	threshold := domain.WeakHandThreshold
	if b.cautious {
		threshold -= 2
	}
	return domain.MaxPoint(hand) <= threshold
}

func (b *StandardBot) DecideDeclare(game *domain.Game, seat int) int {
	p := game.Players[seat]

	strong := 11
	if b.cautious {
		strong = 12
	}
	declared := 0
	for _, piece := range p.Hand {
		if piece.Point() >= strong {
			declared++
		}
	}
	if declared > domain.HandSize {
		declared = domain.HandSize
	}
	if declared == 0 && p.ZeroStreak >= domain.MaxZeroStreak {
		declared = 1
	}

	// The final declaration may not bring the table total to eight.
	if game.DeclaredCount == domain.NumPlayers-1 && game.DeclarationTotal()+declared == 8 {
		if declared < domain.HandSize {
			declared++
		} else {
			declared--
		}
	}
	return declared
}

func (b *StandardBot) DecidePlay(game *domain.Game, seat int) ([]int, error) {
	hand := game.Players[seat].Hand
	if len(hand) == 0 {
		return nil, domain.Invariantf("empty_hand", "seat %d has no pieces to play", seat)
	}

	if len(game.TurnPlays) == 0 {
		return []int{lowestIndex(hand)}, nil
	}

	required := game.RequiredCount
	incumbent, contested := incumbentPlay(game)

	var cheapestWin, cheapestValid []int
	forEachCombination(len(hand), required, func(indices []int) {
		pieces := make([]domain.Piece, len(indices))
		for i, idx := range indices {
			pieces[i] = hand[idx]
		}
		play := domain.Classify(pieces)
		if play.Type == domain.PlayInvalid {
			return
		}
		if cheapestValid == nil || play.MaxPoint < maxPointAt(hand, cheapestValid) {
			cheapestValid = cloneIndices(indices)
		}
		wins := !contested || domain.Beats(play, incumbent)
		if wins && (cheapestWin == nil || play.MaxPoint < maxPointAt(hand, cheapestWin)) {
			cheapestWin = cloneIndices(indices)
		}
	})

	if cheapestWin != nil {
		return cheapestWin, nil
	}
	if cheapestValid != nil {
		return cheapestValid, nil
	}
	return lowestIndices(hand, required), nil
}

// incumbentPlay returns the play currently winning the open trick.
func incumbentPlay(game *domain.Game) (domain.Play, bool) {
	var best domain.Play
	have := false
	for _, tp := range game.TurnPlays {
		if !have {
			if tp.Play.Valid() {
				best = tp.Play
				have = true
			}
			continue
		}
		if domain.Beats(tp.Play, best) {
			best = tp.Play
		}
	}
	return best, have
}

// forEachCombination calls fn with every k-subset of [0,n) in place;
// fn must copy indices it keeps.
func forEachCombination(n, k int, fn func(indices []int)) {
	if k < 1 || k > n {
		return
	}
	indices := make([]int, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(indices) == k {
			fn(indices)
			return
		}
		for i := start; i <= n-(k-len(indices)); i++ {
			indices = append(indices, i)
			walk(i + 1)
			indices = indices[:len(indices)-1]
		}
	}
	walk(0)
}

func cloneIndices(indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	return out
}

func maxPointAt(hand []domain.Piece, indices []int) int {
	max := 0
	for _, idx := range indices {
		if p := hand[idx].Point(); p > max {
			max = p
		}
	}
	return max
}

func lowestIndex(hand []domain.Piece) int {
	best := 0
	for i, p := range hand {
		if p.Point() < hand[best].Point() {
			best = i
		}
	}
	return best
}

// lowestIndices picks the count lowest-point pieces for a forced discard.
func lowestIndices(hand []domain.Piece, count int) []int {
	order := make([]int, len(hand))
	for i := range order {
		order[i] = i
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && hand[order[j]].Point() < hand[order[j-1]].Point(); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	if count > len(order) {
		count = len(order)
	}
	return order[:count]
}
