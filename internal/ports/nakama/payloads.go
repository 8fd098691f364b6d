package nakama

import (
	"liaptui/internal/app"
	"liaptui/internal/domain"
)

// Client request payloads, JSON-encoded in match data messages.

type DeclareRequest struct {
	Declared int `json:"declared"`
}

type PlayPiecesRequest struct {
	Indices []int `json:"indices"`
}

// RedealVoteRequest carries the single-use vote token from the opened
// vote; a stale token is rejected.
type RedealVoteRequest struct {
	RedealID string `json:"redeal_id"`
}

type MarkReadyRequest struct {
	Transition string `json:"transition"`
}

// Server event payloads.

type WirePiece struct {
	Kind  string `json:"kind"`
	Point int    `json:"point"`
}

func toWirePieces(pieces []domain.Piece) []WirePiece {
	out := make([]WirePiece, len(pieces))
	for i, p := range pieces {
		out[i] = WirePiece{Kind: p.String(), Point: p.Point()}
	}
	return out
}

// SeatInfo is one seat's entry in the match snapshot.
type SeatInfo struct {
	Seat            int    `json:"seat"`
	UserID          string `json:"user_id"`
	DisplayName     string `json:"display_name"`
	IsBot           bool   `json:"is_bot"`
	PiecesRemaining int    `json:"pieces_remaining"`
	Score           int    `json:"score"`
}

// MatchSnapshot is broadcast after joins and leaves so clients can render
// the table without replaying history.
type MatchSnapshot struct {
	Seats       []SeatInfo `json:"seats"`
	Phase       string     `json:"phase"`
	RoundNumber int        `json:"round_number"`
	CurrentSeat int        `json:"current_seat"`
	Multiplier  int        `json:"multiplier"`
}

type PhaseChangedEvent struct {
	Phase       string `json:"phase"`
	RoundNumber int    `json:"round_number"`
	StarterSeat int    `json:"starter_seat"`
	CurrentSeat int    `json:"current_seat"`
	Multiplier  int    `json:"multiplier"`
}

type HandDealtEvent struct {
	Seat int         `json:"seat"`
	Hand []WirePiece `json:"hand"`
}

type WeakHandsEvent struct {
	WeakSeats []int `json:"weak_seats"`
}

type RedealOpenedEvent struct {
	RedealID      string `json:"redeal_id"`
	RequesterSeat int    `json:"requester_seat"`
	AutoAccepted  []int  `json:"auto_accepted"`
	PendingSeats  []int  `json:"pending_seats"`
}

type RedealVoteEvent struct {
	Seat     int  `json:"seat"`
	Accept   bool `json:"accept"`
	Implicit bool `json:"implicit"`
}

type RedealExecutedEvent struct {
	Multiplier       int `json:"multiplier"`
	RedealsThisRound int `json:"redeals_this_round"`
}

type RedealCancelledEvent struct {
	DeclinerSeat int `json:"decliner_seat"`
}

type DealKeptEvent struct {
	Seat         int   `json:"seat"`
	PendingSeats []int `json:"pending_seats"`
}

type DeclarationMadeEvent struct {
	Seat     int `json:"seat"`
	Declared int `json:"declared"`
	Total    int `json:"total"`
	NextSeat int `json:"next_seat"`
}

type PiecesPlayedEvent struct {
	Seat       int         `json:"seat"`
	Pieces     []WirePiece `json:"pieces"`
	PlayType   string      `json:"play_type"`
	Forced     bool        `json:"forced"`
	PieceCount int         `json:"piece_count"`
	NextSeat   int         `json:"next_seat"`
}

type TrickResolvedEvent struct {
	WinnerSeat    int         `json:"winner_seat"`
	WinningPieces []WirePiece `json:"winning_pieces"`
	PileCount     int         `json:"pile_count"`
	TricksPlayed  int         `json:"tricks_played"`
}

type RoundFlaggedEvent struct {
	Reason string `json:"reason"`
}

type ScoreLine struct {
	Seat     int    `json:"seat"`
	Name     string `json:"name"`
	Declared int    `json:"declared"`
	Captured int    `json:"captured"`
	Base     int    `json:"base"`
	Final    int    `json:"final"`
	Total    int    `json:"total"`
	Perfect  bool   `json:"perfect"`
}

type RoundScoredEvent struct {
	RoundNumber int         `json:"round_number"`
	Multiplier  int         `json:"multiplier"`
	Flagged     bool        `json:"flagged"`
	Scores      []ScoreLine `json:"scores"`
}

type GameEndedEvent struct {
	Winners     []string    `json:"winners"`
	FinalScores []ScoreLine `json:"final_scores"`
}

type ReadyRecordedEvent struct {
	Seat       int    `json:"seat"`
	Transition string `json:"transition"`
	ReadyCount int    `json:"ready_count"`
}

type SeatConvertedEvent struct {
	Seat int    `json:"seat"`
	Name string `json:"name"`
}

type SeatReclaimedEvent struct {
	Seat int    `json:"seat"`
	Name string `json:"name"`
}

type GameErrorEvent struct {
	Kind    string `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toScoreLines(scores []app.PlayerScore) []ScoreLine {
	out := make([]ScoreLine, len(scores))
	for i, s := range scores {
		out[i] = ScoreLine{
			Seat:     s.Seat,
			Name:     s.Name,
			Declared: s.Declared,
			Captured: s.Captured,
			Base:     s.Base,
			Final:    s.Final,
			Total:    s.Total,
			Perfect:  s.Perfect,
		}
	}
	return out
}

// wireEvent maps an app event to its opcode and wire payload. Unknown
// kinds return a zero opcode and are not dispatched.
func wireEvent(ev app.Event) (int64, any) {
	switch ev.Kind {
	case app.EventPhaseChanged:
		p := ev.Payload.(app.PhaseChangedPayload)
		return OpPhaseChanged, PhaseChangedEvent{
			Phase:       string(p.Phase),
			RoundNumber: p.RoundNumber,
			StarterSeat: p.StarterSeat,
			CurrentSeat: p.CurrentSeat,
			Multiplier:  p.Multiplier,
		}
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		return OpHandDealt, HandDealtEvent{Seat: p.Seat, Hand: toWirePieces(p.Hand)}
	case app.EventWeakHands:
		p := ev.Payload.(app.WeakHandsPayload)
		return OpWeakHands, WeakHandsEvent{WeakSeats: p.WeakSeats}
	case app.EventRedealOpened:
		p := ev.Payload.(app.RedealOpenedPayload)
		return OpRedealOpened, RedealOpenedEvent{
			RedealID:      p.RedealID,
			RequesterSeat: p.RequesterSeat,
			AutoAccepted:  p.AutoAccepted,
			PendingSeats:  p.PendingSeats,
		}
	case app.EventRedealVote:
		p := ev.Payload.(app.RedealVotePayload)
		return OpRedealVote, RedealVoteEvent{Seat: p.Seat, Accept: p.Accept, Implicit: p.Implicit}
	case app.EventRedealExecuted:
		p := ev.Payload.(app.RedealExecutedPayload)
		return OpRedealExecuted, RedealExecutedEvent{Multiplier: p.Multiplier, RedealsThisRound: p.RedealsThisRound}
	case app.EventRedealCancelled:
		p := ev.Payload.(app.RedealCancelledPayload)
		return OpRedealCancelled, RedealCancelledEvent{DeclinerSeat: p.DeclinerSeat}
	case app.EventDealKept:
		p := ev.Payload.(app.DealKeptPayload)
		return OpDealKept, DealKeptEvent{Seat: p.Seat, PendingSeats: p.PendingSeats}
	case app.EventDeclarationMade:
		p := ev.Payload.(app.DeclarationMadePayload)
		return OpDeclarationMade, DeclarationMadeEvent{Seat: p.Seat, Declared: p.Declared, Total: p.Total, NextSeat: p.NextSeat}
	case app.EventPiecesPlayed:
		p := ev.Payload.(app.PiecesPlayedPayload)
		return OpPiecesPlayed, PiecesPlayedEvent{
			Seat:       p.Seat,
			Pieces:     toWirePieces(p.Pieces),
			PlayType:   p.PlayType.String(),
			Forced:     p.Forced,
			PieceCount: p.PieceCount,
			NextSeat:   p.NextSeat,
		}
	case app.EventTrickResolved:
		p := ev.Payload.(app.TrickResolvedPayload)
		return OpTrickResolved, TrickResolvedEvent{
			WinnerSeat:    p.WinnerSeat,
			WinningPieces: toWirePieces(p.WinningPieces),
			PileCount:     p.PileCount,
			TricksPlayed:  p.TricksPlayed,
		}
	case app.EventRoundFlagged:
		p := ev.Payload.(app.RoundFlaggedPayload)
		return OpRoundFlagged, RoundFlaggedEvent{Reason: p.Reason}
	case app.EventRoundScored:
		p := ev.Payload.(app.RoundScoredPayload)
		return OpRoundScored, RoundScoredEvent{
			RoundNumber: p.RoundNumber,
			Multiplier:  p.Multiplier,
			Flagged:     p.Flagged,
			Scores:      toScoreLines(p.Scores),
		}
	case app.EventGameEnded:
		p := ev.Payload.(app.GameEndedPayload)
		return OpGameEnded, GameEndedEvent{Winners: p.Winners, FinalScores: toScoreLines(p.FinalScores)}
	case app.EventReadyRecorded:
		p := ev.Payload.(app.ReadyRecordedPayload)
		return OpReadyRecorded, ReadyRecordedEvent{Seat: p.Seat, Transition: p.Transition, ReadyCount: p.ReadyCount}
	case app.EventSeatConverted:
		p := ev.Payload.(app.SeatConvertedPayload)
		return OpSeatConverted, SeatConvertedEvent{Seat: p.Seat, Name: p.Name}
	case app.EventSeatReclaimed:
		p := ev.Payload.(app.SeatReclaimedPayload)
		return OpSeatReclaimed, SeatReclaimedEvent{Seat: p.Seat, Name: p.Name}
	default:
		return 0, nil
	}
}
