package domain

import "github.com/google/uuid"

// RedealSession is the ephemeral voting state nested inside the
// preparation phase. A nil *RedealSession on the Game means no redeal is
// active; the session is destroyed when voting resolves either way.
type RedealSession struct {
	// ID is an opaque single-use token; votes carrying a stale ID are
	// rejected with a conflict.
	ID string
	// Votes maps seat -> accept. A first decline resolves the session
	// immediately, so recorded votes are accepts in practice; the decline
	// is kept for the resolution event.
	Votes map[int]bool
	// WeakSeats are the seats whose hands were weak when the session
	// opened. They are auto-registered as accepts.
	WeakSeats []int
	// RequesterSeat opened the session.
	RequesterSeat int
}

// NewRedealSession opens a session for the given requester, auto-accepting
// the requester and every other currently weak-hand seat.
func NewRedealSession(requesterSeat int, weakSeats []int) *RedealSession {
	s := &RedealSession{
		ID:            uuid.NewString(),
		Votes:         make(map[int]bool, NumPlayers),
		WeakSeats:     append([]int{}, weakSeats...),
		RequesterSeat: requesterSeat,
	}
	s.Votes[requesterSeat] = true
	for _, seat := range weakSeats {
		s.Votes[seat] = true
	}
	return s
}

// HasVoted reports whether the seat has an accept on record.
func (s *RedealSession) HasVoted(seat int) bool {
	_, ok := s.Votes[seat]
	return ok
}

// AllAccepted reports whether every seat has voted accept.
func (s *RedealSession) AllAccepted() bool {
	return len(s.Votes) == NumPlayers
}

// PendingSeats returns the seats that have not voted yet, in seat order.
func (s *RedealSession) PendingSeats() []int {
	var pending []int
	for seat := 0; seat < NumPlayers; seat++ {
		if !s.HasVoted(seat) {
			pending = append(pending, seat)
		}
	}
	return pending
}
