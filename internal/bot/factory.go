package bot

import (
	"fmt"
)

// BotLevel selects a strategy implementation.
type BotLevel int

const (
	BotLevelStandard BotLevel = iota
	BotLevelCautious
)

// NewBrain creates a strategy for the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelStandard:
		return &StandardBot{}, nil
	case BotLevelCautious:
		return &StandardBot{cautious: true}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// LevelFromDifficulty maps an identity difficulty string to a level.
func LevelFromDifficulty(difficulty string) BotLevel {
	if difficulty == "cautious" {
		return BotLevelCautious
	}
	return BotLevelStandard
}
