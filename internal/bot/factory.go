package bot

import (
	"fmt"
	"math/rand"
)

// BotLevel selects an opponent difficulty.
type BotLevel int

const (
	BotLevelEasy BotLevel = iota
	BotLevelStandard
	BotLevelHard
)

// LevelForDifficulty maps an identity difficulty string onto a level.
// Unknown strings get the standard opponent.
func LevelForDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "easy":
		return BotLevelEasy
	case "hard":
		return BotLevelHard
	default:
		return BotLevelStandard
	}
}

// NewBrain creates a new AI brain for the specified level.
func NewBrain(level BotLevel, rng *rand.Rand) (Brain, error) {
	switch level {
	case BotLevelEasy:
		return NewTunedBot(CautiousTuning, rng), nil
	case BotLevelStandard:
		return NewTunedBot(DefaultTuning, rng), nil
	case BotLevelHard:
		return NewTunedBot(SharpTuning, rng), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// NewAgent builds an agent for a provisioned bot identity, picking the
// strategy from the identity's difficulty.
func NewAgent(botID string, rng *rand.Rand) (*Agent, error) {
	identity, ok := GetBotConfig(botID)
	if !ok {
		return nil, fmt.Errorf("unknown bot id: %s", botID)
	}
	return NewAgentForIdentity(identity, rng)
}

// NewAgentForIdentity builds an agent directly from an identity, used
// when the pool entry has not been provisioned into the config map.
func NewAgentForIdentity(identity BotIdentity, rng *rand.Rand) (*Agent, error) {
	brain, err := NewBrain(LevelForDifficulty(identity.Difficulty), rng)
	if err != nil {
		return nil, err
	}
	return &Agent{
		ID:       identity.UserID,
		Name:     identity.DisplayName,
		Strategy: brain,
	}, nil
}
