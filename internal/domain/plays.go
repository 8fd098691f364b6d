package domain

import "sort"

// PlayType is the classified shape of a submitted set of pieces. The
// declaration order doubles as the trick-winning priority: a later type
// beats any earlier one regardless of point values.
type PlayType int

const (
	PlayInvalid PlayType = iota
	PlaySingle
	PlayPair
	PlayThreeOfAKind
	PlayStraight
	PlayFourOfAKind
	PlayExtendedStraight
	PlayExtendedStraightFive
	PlayFiveOfAKind
	PlayDoubleStraight
)

var playTypeNames = [...]string{
	"INVALID",
	"SINGLE",
	"PAIR",
	"THREE_OF_A_KIND",
	"STRAIGHT",
	"FOUR_OF_A_KIND",
	"EXTENDED_STRAIGHT",
	"EXTENDED_STRAIGHT_5",
	"FIVE_OF_A_KIND",
	"DOUBLE_STRAIGHT",
}

func (t PlayType) String() string {
	if t < 0 || int(t) >= len(playTypeNames) {
		return "UNKNOWN"
	}
	return playTypeNames[t]
}

// Play is a classified set of pieces.
type Play struct {
	Type     PlayType
	Pieces   []Piece
	MaxPoint int
}

// Valid reports whether the play classified as a legal combination.
func (p Play) Valid() bool {
	return p.Type != PlayInvalid
}

// The two straight groups. A straight must cover one group exactly, in a
// single color.
var (
	upperStraight = [3]Family{FamilyGeneral, FamilyAdvisor, FamilyElephant}
	lowerStraight = [3]Family{FamilyChariot, FamilyHorse, FamilyCannon}
)

// Classify determines the play type for 1-6 pieces. The result does not
// depend on the order of the input.
func Classify(pieces []Piece) Play {
	invalid := Play{Type: PlayInvalid, Pieces: pieces, MaxPoint: MaxPoint(pieces)}
	valid := func(t PlayType) Play {
		return Play{Type: t, Pieces: pieces, MaxPoint: MaxPoint(pieces)}
	}

	n := len(pieces)
	if n == 0 || n > 6 {
		return invalid
	}
	if n == 1 {
		return valid(PlaySingle)
	}

	// Multi-piece plays must be one color.
	color := pieces[0].Color()
	for _, p := range pieces[1:] {
		if p.Color() != color {
			return invalid
		}
	}

	counts := familyCounts(pieces)

	switch n {
	case 2:
		if len(counts) == 1 {
			return valid(PlayPair)
		}
	case 3:
		if counts[FamilySoldier] == 3 {
			return valid(PlayThreeOfAKind)
		}
		if matchesGroup(counts, upperStraight) || matchesGroup(counts, lowerStraight) {
			return valid(PlayStraight)
		}
	case 4:
		if counts[FamilySoldier] == 4 {
			return valid(PlayFourOfAKind)
		}
		if shape := groupShape(counts); shapeEquals(shape, []int{1, 1, 2}) {
			return valid(PlayExtendedStraight)
		}
	case 5:
		if counts[FamilySoldier] == 5 {
			return valid(PlayFiveOfAKind)
		}
		shape := groupShape(counts)
		if shapeEquals(shape, []int{1, 1, 3}) || shapeEquals(shape, []int{1, 2, 2}) {
			return valid(PlayExtendedStraightFive)
		}
	case 6:
		if counts[FamilyChariot] == 2 && counts[FamilyHorse] == 2 && counts[FamilyCannon] == 2 && len(counts) == 3 {
			return valid(PlayDoubleStraight)
		}
	}
	return invalid
}

// Beats reports whether challenger wins over incumbent. An invalid play
// never wins, and an exact tie keeps the incumbent.
func Beats(challenger, incumbent Play) bool {
	if !challenger.Valid() {
		return false
	}
	if !incumbent.Valid() {
		return true
	}
	if challenger.Type != incumbent.Type {
		return challenger.Type > incumbent.Type
	}
	return challenger.MaxPoint > incumbent.MaxPoint
}

func familyCounts(pieces []Piece) map[Family]int {
	counts := make(map[Family]int, len(pieces))
	for _, p := range pieces {
		counts[p.Family()]++
	}
	return counts
}

// matchesGroup reports whether counts holds exactly one of each family in
// the group and nothing else.
func matchesGroup(counts map[Family]int, group [3]Family) bool {
	if len(counts) != 3 {
		return false
	}
	for _, f := range group {
		if counts[f] != 1 {
			return false
		}
	}
	return true
}

// groupShape returns the sorted family-count multiset when every family in
// counts belongs to a single straight group, or nil otherwise.
func groupShape(counts map[Family]int) []int {
	for _, group := range [][3]Family{upperStraight, lowerStraight} {
		inGroup := 0
		for _, f := range group {
			if counts[f] > 0 {
				inGroup++
			}
		}
		if inGroup != len(counts) {
			continue
		}
		shape := make([]int, 0, 3)
		for _, f := range group {
			if counts[f] > 0 {
				shape = append(shape, counts[f])
			}
		}
		sort.Ints(shape)
		return shape
	}
	return nil
}

func shapeEquals(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
