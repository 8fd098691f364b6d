package bot

import (
	"liaptui/internal/domain"
)

// Agent represents an autonomous bot player occupying one seat.
type Agent struct {
	ID       string
	Name     string
	Seat     int
	Strategy Brain
}

// NewAgent seats a bot with the given strategy.
func NewAgent(id, name string, seat int, strategy Brain) *Agent {
	return &Agent{ID: id, Name: name, Seat: seat, Strategy: strategy}
}

// WantsRedeal asks the agent's strategy about the current deal.
func (a *Agent) WantsRedeal(game *domain.Game) bool {
	return a.Strategy.DecideRedeal(game, a.Seat)
}

// Declare asks the agent for its pile declaration.
func (a *Agent) Declare(game *domain.Game) int {
	return a.Strategy.DecideDeclare(game, a.Seat)
}

// Play asks the agent for its trick submission as hand indices.
func (a *Agent) Play(game *domain.Game) ([]int, error) {
	return a.Strategy.DecidePlay(game, a.Seat)
}
