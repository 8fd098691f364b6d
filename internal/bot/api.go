package bot

import (
	"liaptui/internal/domain"
)

// Brain is the interface all bot strategies implement. Decisions are
// pure functions of the game state; the orchestrator owns timing.
type Brain interface {
	// DecideRedeal reports whether the seat wants a fresh deal when a
	// redeal vote is open (or when the seat may request one itself).
	DecideRedeal(game *domain.Game, seat int) bool
	// DecideDeclare returns the seat's pile declaration, already
	// adjusted for the declaration-phase constraints.
	DecideDeclare(game *domain.Game, seat int) int
	// DecidePlay returns hand indices for the seat's trick submission.
	DecidePlay(game *domain.Game, seat int) ([]int, error)
}
