package app

import "liaptui/internal/domain"

// EventKind identifies emitted game events for dispatch and the event
// store. One event is emitted per state change, synchronously within the
// action handler that caused it.
type EventKind string

const (
	EventPhaseChanged    EventKind = "phase_changed"
	EventHandDealt       EventKind = "hand_dealt"
	EventWeakHands       EventKind = "weak_hands_detected"
	EventRedealOpened    EventKind = "redeal_opened"
	EventRedealVote      EventKind = "redeal_vote_recorded"
	EventRedealExecuted  EventKind = "redeal_executed"
	EventRedealCancelled EventKind = "redeal_cancelled"
	EventDealKept        EventKind = "deal_kept"
	EventDeclarationMade EventKind = "declaration_recorded"
	EventPiecesPlayed    EventKind = "play_recorded"
	EventTrickResolved   EventKind = "trick_resolved"
	EventRoundFlagged    EventKind = "round_flagged"
	EventRoundScored     EventKind = "round_scored"
	EventGameEnded       EventKind = "game_ended"
	EventReadyRecorded   EventKind = "ready_recorded"
	EventSeatConverted   EventKind = "seat_converted"
	EventSeatReclaimed   EventKind = "seat_reclaimed"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player names; empty means broadcast
}

type PhaseChangedPayload struct {
	Phase       domain.Phase
	RoundNumber int
	StarterSeat int
	CurrentSeat int
	Multiplier  int
}

type HandDealtPayload struct {
	Seat int
	Name string
	Hand []domain.Piece
}

type WeakHandsPayload struct {
	WeakSeats []int
}

type RedealOpenedPayload struct {
	RedealID      string
	RequesterSeat int
	AutoAccepted  []int
	PendingSeats  []int
}

type RedealVotePayload struct {
	Seat     int
	Accept   bool
	Implicit bool // true when substituted for a vote timeout
}

type RedealExecutedPayload struct {
	Multiplier       int
	RedealsThisRound int
}

type RedealCancelledPayload struct {
	DeclinerSeat int
}

type DealKeptPayload struct {
	Seat int
	// Remaining weak seats still entitled to request a redeal.
	PendingSeats []int
}

type DeclarationMadePayload struct {
	Seat     int
	Declared int
	Total    int
	NextSeat int // -1 once all four have declared
}

type PiecesPlayedPayload struct {
	Seat       int
	Pieces     []domain.Piece
	PlayType   domain.PlayType
	Forced     bool // forced discard with no valid play available
	PieceCount int
	NextSeat   int
}

type TrickResolvedPayload struct {
	WinnerSeat    int
	WinningPieces []domain.Piece
	PileCount     int
	TricksPlayed  int
}

type RoundFlaggedPayload struct {
	Reason string
}

// PlayerScore is one player's line in a round or final scoreboard.
type PlayerScore struct {
	Seat     int
	Name     string
	Declared int
	Captured int
	Base     int
	Final    int
	Total    int
	Perfect  bool
}

type RoundScoredPayload struct {
	RoundNumber int
	Multiplier  int
	Flagged     bool
	Scores      []PlayerScore
}

type GameEndedPayload struct {
	Winners     []string
	FinalScores []PlayerScore
}

type ReadyRecordedPayload struct {
	Seat       int
	Transition string
	ReadyCount int
}

type SeatConvertedPayload struct {
	Seat int
	Name string
}

type SeatReclaimedPayload struct {
	Seat int
	Name string
}
