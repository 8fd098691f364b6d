package domain

// BaseScore maps a player's declared and actual pile counts to the round
// score before the redeal multiplier:
//
//	declared 0, actual 0  -> +3
//	declared 0, actual >0 -> -actual
//	declared == actual >0 -> declared + 5
//	otherwise             -> -|declared - actual|
func BaseScore(declared, actual int) int {
	switch {
	case declared == 0 && actual == 0:
		return 3
	case declared == 0:
		return -actual
	case declared == actual:
		return declared + 5
	default:
		diff := declared - actual
		if diff < 0 {
			diff = -diff
		}
		return -diff
	}
}

// FinalScore applies the round's redeal multiplier to the base score. The
// multiplier is at least 1 and applies uniformly to every player.
func FinalScore(declared, actual, multiplier int) int {
	return BaseScore(declared, actual) * multiplier
}

// PerfectRound reports whether the player hit a non-zero declaration
// exactly. Used for stats only, never for scoring.
func PerfectRound(declared, actual int) bool {
	return declared > 0 && declared == actual
}
