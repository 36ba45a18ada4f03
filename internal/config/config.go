package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type StakeTier struct {
	ID    string `json:"id"`
	Stake int64  `json:"stake"`
}

type GameConfig struct {
	DefaultTier         string      `json:"default_tier"`
	Tiers               []StakeTier `json:"tiers"`
	TurnDurationSeconds int         `json:"turn_duration_seconds"`
	// BotAutoFillDelaySeconds configures how many seconds to wait
	// before seating a bot opposite a solo human.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotTurnMinSeconds/BotTurnMaxSeconds bound the pacing delay before
	// the bot takes its turn.
	BotTurnMinSeconds int `json:"bot_turn_min_seconds"`
	BotTurnMaxSeconds int `json:"bot_turn_max_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetStake returns the stake for a given tier ID, or the default when
// the ID is unknown or no config is loaded.
func GetStake(tierID string) int64 {
	if cfg == nil {
		return 100
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier.Stake
		}
	}
	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier.Stake
		}
	}

	return 100
}
