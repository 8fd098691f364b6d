package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
)

// GameConfig holds the tunable match parameters. Values come from a JSON
// file shipped alongside the module, with optional per-key overrides from
// the runtime environment.
type GameConfig struct {
	WinThreshold       int `json:"win_threshold"`
	MaxRounds          int `json:"max_rounds"`
	MaxRedealsPerRound int `json:"max_redeals_per_round"`
	// RedealVoteTimeoutSeconds bounds how long a single redeal vote may
	// stay pending before it counts as a decline.
	RedealVoteTimeoutSeconds int `json:"redeal_vote_timeout_seconds"`
	BotActionDelaySeconds    int `json:"bot_action_delay_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before
	// filling empty seats in an understaffed lobby with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

// DefaultGameConfig returns the values used when no config file is
// provided.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		WinThreshold:             50,
		MaxRounds:                20,
		MaxRedealsPerRound:       3,
		RedealVoteTimeoutSeconds: 30,
		BotActionDelaySeconds:    1,
		BotAutoFillDelaySeconds:  10,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. An
// empty path keeps the defaults.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c := DefaultGameConfig()
		if path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				loadErr = fmt.Errorf("failed to read game config: %w", err)
				return
			}
			if err := json.Unmarshal(data, c); err != nil {
				loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
				return
			}
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, falling back to
// defaults when LoadGameConfig was never called.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return DefaultGameConfig()
	}
	return cfg
}

// ApplyEnv overrides individual fields from a runtime environment map,
// as exposed by the server's RUNTIME_CTX_ENV context key. Unparseable
// values are ignored.
func (c *GameConfig) ApplyEnv(env map[string]string) {
	intVar := func(key string, dst *int) {
		if raw, ok := env[key]; ok {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				*dst = v
			}
		}
	}
	intVar("liaptui_win_threshold", &c.WinThreshold)
	intVar("liaptui_max_rounds", &c.MaxRounds)
	intVar("liaptui_max_redeals_per_round", &c.MaxRedealsPerRound)
	intVar("liaptui_redeal_vote_timeout_seconds", &c.RedealVoteTimeoutSeconds)
	intVar("liaptui_bot_action_delay_seconds", &c.BotActionDelaySeconds)
	intVar("liaptui_bot_auto_fill_delay_seconds", &c.BotAutoFillDelaySeconds)
}
