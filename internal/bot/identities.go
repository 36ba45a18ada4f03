package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity describes one provisioned opponent account.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy", "medium", "hard"
	AvatarIndex int    `json:"avatar_index"`
}

var (
	identityMu    sync.Mutex
	botIdentities []BotIdentity
	botConfigMap  map[string]BotIdentity
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the opponent profiles from the given path. Only
// the first call reads the file.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		var identities []BotIdentity
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		RegisterIdentities(identities)
	})
	return loadErr
}

// RegisterIdentities installs an identity pool directly, replacing any
// previous pool. Tests use this instead of a file on disk.
func RegisterIdentities(identities []BotIdentity) {
	identityMu.Lock()
	defer identityMu.Unlock()

	botIdentities = identities
	botConfigMap = make(map[string]BotIdentity, len(identities))
	for _, identity := range identities {
		if identity.UserID != "" {
			botConfigMap[identity.UserID] = identity
		}
	}
}

// ProvisionBots ensures that bot accounts exist in the Nakama database
// and carry the is_bot metadata.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		identityMu.Lock()
		defer identityMu.Unlock()

		for i := range botIdentities {
			identity := &botIdentities[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, _, authErr := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if authErr != nil {
				logger.Error("ProvisionBots: failed to authenticate bot %s: %v", identity.Username, authErr)
				continue
			}

			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"difficulty":   identity.Difficulty,
				"avatar_index": identity.AvatarIndex,
			}
			if authErr = nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); authErr != nil {
				logger.Warn("ProvisionBots: failed to update bot account %s: %v", userID, authErr)
			}

			botConfigMap[identity.UserID] = *identity
			logger.Info("ProvisionBots: bot %s (%s) is ready, difficulty %s", identity.DisplayName, userID, identity.Difficulty)
		}
	})
	return nil
}

// GetBotConfig returns the full identity configuration for a bot ID.
func GetBotConfig(userID string) (BotIdentity, bool) {
	identityMu.Lock()
	defer identityMu.Unlock()
	config, ok := botConfigMap[userID]
	return config, ok
}

// GetBotDisplayName returns the display name for a bot ID, falling back
// to the username, or empty when the ID is not a bot.
func GetBotDisplayName(userID string) string {
	config, ok := GetBotConfig(userID)
	if !ok {
		return ""
	}
	if config.DisplayName == "" {
		return config.Username
	}
	return config.DisplayName
}

// GetBotIdentity returns an identity by index (mod pool size), with a
// synthetic fallback when no pool is loaded.
func GetBotIdentity(index int) BotIdentity {
	identityMu.Lock()
	defer identityMu.Unlock()

	if len(botIdentities) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("bot-%d", index),
			Username:    fmt.Sprintf("bot_%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index),
			Difficulty:  "medium",
		}
	}
	return botIdentities[index%len(botIdentities)]
}

// IsBot reports whether the given user ID belongs to the bot pool.
func IsBot(userID string) bool {
	_, ok := GetBotConfig(userID)
	return ok
}
