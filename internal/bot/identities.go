package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// BotIdentity describes one entry in the bot name pool.
type BotIdentity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "standard" or "cautious"
}

// botIDPrefix marks synthetic bot user IDs so presence checks can tell
// bots from humans without a lookup.
const botIDPrefix = "bot:"

var defaultIdentities = []BotIdentity{
	{UserID: "bot:somchai", DisplayName: "Somchai", Difficulty: "standard"},
	{UserID: "bot:malee", DisplayName: "Malee", Difficulty: "cautious"},
	{UserID: "bot:anon", DisplayName: "Anon", Difficulty: "standard"},
	{UserID: "bot:pim", DisplayName: "Pim", Difficulty: "standard"},
	{UserID: "bot:chai", DisplayName: "Chai", Difficulty: "cautious"},
	{UserID: "bot:nok", DisplayName: "Nok", Difficulty: "standard"},
}

var (
	botIdentities []BotIdentity
	loadOnce      sync.Once
	loadErr       error
)

// LoadIdentities loads the bot profile pool from the given path. An
// empty path keeps the built-in pool.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		botIdentities = defaultIdentities
		if path == "" {
			return
		}

		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		var loaded []BotIdentity
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		for i := range loaded {
			if !strings.HasPrefix(loaded[i].UserID, botIDPrefix) {
				loaded[i].UserID = botIDPrefix + loaded[i].UserID
			}
		}
		if len(loaded) > 0 {
			botIdentities = loaded
		}
	})
	return loadErr
}

// GetBotIdentity returns an identity for a bot by index (mod pool size).
func GetBotIdentity(index int) BotIdentity {
	pool := botIdentities
	if len(pool) == 0 {
		pool = defaultIdentities
	}
	return pool[index%len(pool)]
}

// IsBot reports whether the given user ID belongs to a bot.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}
