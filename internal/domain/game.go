package domain

// NumPlayers is fixed: a game always has exactly four seats.
const NumPlayers = 4

// WeakHandThreshold is the maximum point value a hand may top out at and
// still count as weak, making its holder eligible to request a redeal.
const WeakHandThreshold = 9

// MaxZeroStreak caps consecutive zero declarations per player.
const MaxZeroStreak = 2

// Phase is the externally observable lifecycle stage of a game.
type Phase string

const (
	PhaseNotStarted  Phase = "not_started"
	PhasePreparation Phase = "preparation"
	PhaseDeclaration Phase = "declaration"
	PhaseTurn        Phase = "turn"
	PhaseScoring     Phase = "scoring"
	PhaseGameOver    Phase = "game_over"
)

// TransitionRoundStart names the ready-gated transition out of scoring.
const TransitionRoundStart = "round_start"

// Player holds per-seat state. Players are owned exclusively by the Game
// aggregate; nothing outside the game's single-writer context mutates
// them.
type Player struct {
	Name  string
	IsBot bool

	// Round-scoped, reset each round.
	Hand     []Piece
	Declared int // -1 until the player declares this round
	Captured int

	// Game-scoped.
	ZeroStreak int
	Score      int
}

// Weak reports whether the player's current hand is weak.
func (p *Player) Weak() bool {
	return len(p.Hand) > 0 && MaxPoint(p.Hand) <= WeakHandThreshold
}

// Game is the aggregate root for one room's game.
type Game struct {
	Phase   Phase
	Players [NumPlayers]*Player

	RoundNumber      int
	RedealMultiplier int
	RedealsThisRound int

	// StarterSeat leads the round: declaration rotation starts there and
	// the first trick is led from there.
	StarterSeat int
	// starterOverride is set when a redeal decliner claims the start.
	starterOverride int

	CurrentSeat   int
	DeclaredCount int

	RequiredCount int
	TurnPlays     []TurnPlay
	TricksPlayed  int

	Redeal *RedealSession
	// RedealPasses tracks weak seats that waived their redeal request on
	// the current deal.
	RedealPasses map[int]bool

	// Ready tracks seats that confirmed the pending transition named by
	// ReadyFor.
	ReadyFor string
	Ready    map[int]bool

	// RoundFlagged marks a round forced into scoring by an invariant
	// violation; its result is reported but suspect.
	RoundFlagged bool

	Winners []string
}

// NewGame creates a game with the four named players in seat order.
func NewGame(names [NumPlayers]string, bots [NumPlayers]bool) *Game {
	g := &Game{
		Phase:            PhaseNotStarted,
		RedealMultiplier: 1,
		starterOverride:  -1,
		Ready:            make(map[int]bool),
		RedealPasses:     make(map[int]bool),
	}
	for seat, name := range names {
		g.Players[seat] = &Player{Name: name, IsBot: bots[seat], Declared: -1}
	}
	return g
}

// SeatOf returns the seat for a player name, or -1.
func (g *Game) SeatOf(name string) int {
	for seat, p := range g.Players {
		if p.Name == name {
			return seat
		}
	}
	return -1
}

// NextSeat returns the seat after the given one in rotation order.
func NextSeat(seat int) int {
	return (seat + 1) % NumPlayers
}

// WeakSeats returns the seats holding weak hands, in seat order.
func (g *Game) WeakSeats() []int {
	var weak []int
	for seat, p := range g.Players {
		if p.Weak() {
			weak = append(weak, seat)
		}
	}
	return weak
}

// ResetRound clears round-scoped state ahead of a fresh deal. The redeal
// multiplier resets here and only here: a redeal within a round raises it
// without ever resetting it.
func (g *Game) ResetRound() {
	g.RedealMultiplier = 1
	g.RedealsThisRound = 0
	g.starterOverride = -1
	g.RequiredCount = 0
	g.TurnPlays = nil
	g.TricksPlayed = 0
	g.DeclaredCount = 0
	g.Redeal = nil
	g.RedealPasses = make(map[int]bool)
	g.ReadyFor = ""
	g.Ready = make(map[int]bool)
	g.RoundFlagged = false
	for _, p := range g.Players {
		p.Hand = nil
		p.Declared = -1
		p.Captured = 0
	}
}

// SetHands installs freshly dealt hands.
func (g *Game) SetHands(hands [NumPlayers][]Piece) {
	for seat, p := range g.Players {
		p.Hand = hands[seat]
	}
}

// ClaimStart records that the given seat leads the round, overriding the
// default starter choice. Used when a redeal decliner claims the start.
func (g *Game) ClaimStart(seat int) {
	g.starterOverride = seat
}

// ResolveStarter picks the round's starting seat: a redeal decliner's
// claim wins, otherwise the holder of the red general on the final deal.
func (g *Game) ResolveStarter() int {
	if g.starterOverride >= 0 {
		return g.starterOverride
	}
	for seat, p := range g.Players {
		for _, piece := range p.Hand {
			if piece.Kind == GeneralRed {
				return seat
			}
		}
	}
	return 0
}

// DeclarationTotal sums the declarations made so far this round.
func (g *Game) DeclarationTotal() int {
	total := 0
	for _, p := range g.Players {
		if p.Declared >= 0 {
			total += p.Declared
		}
	}
	return total
}

// HandsEmpty reports whether every hand has been played out.
func (g *Game) HandsEmpty() bool {
	for _, p := range g.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// PiecesAt resolves hand indices to pieces, rejecting out-of-range or
// duplicate indices.
func (p *Player) PiecesAt(indices []int) ([]Piece, error) {
	seen := make(map[int]bool, len(indices))
	pieces := make([]Piece, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(p.Hand) {
			return nil, Validationf("piece_index_out_of_range", "index %d outside hand of %d pieces", idx, len(p.Hand))
		}
		if seen[idx] {
			return nil, Validationf("duplicate_piece_index", "index %d repeated", idx)
		}
		seen[idx] = true
		pieces = append(pieces, p.Hand[idx])
	}
	return pieces, nil
}

// RemoveAt removes the pieces at the given hand indices. Indices must have
// been validated with PiecesAt first.
func (p *Player) RemoveAt(indices []int) {
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		drop[idx] = true
	}
	kept := make([]Piece, 0, len(p.Hand)-len(indices))
	for i, piece := range p.Hand {
		if !drop[i] {
			kept = append(kept, piece)
		}
	}
	p.Hand = kept
}

// HasValidPlay reports whether the hand contains any valid combination of
// exactly count pieces. Used to decide whether a follower may be held to a
// valid play or must be allowed a forced discard.
func HasValidPlay(hand []Piece, count int) bool {
	if count <= 0 || count > len(hand) {
		return false
	}
	picked := make([]Piece, 0, count)
	var search func(start int) bool
	search = func(start int) bool {
		if len(picked) == count {
			return Classify(picked).Valid()
		}
		for i := start; i <= len(hand)-(count-len(picked)); i++ {
			picked = append(picked, hand[i])
			if search(i + 1) {
				return true
			}
			picked = picked[:len(picked)-1]
		}
		return false
	}
	return search(0)
}
