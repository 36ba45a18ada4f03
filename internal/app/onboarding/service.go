package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"thirtyone/internal/ports"
)

const defaultWelcomeChips = 5000

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but
	// onboarding continued.
	ProfileUpdateErr error
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	economy  ports.EconomyPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/economy must be non-nil; rng may be nil to use a time-seeded
// default.
func NewService(accounts ports.AccountPort, economy ports.EconomyPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		economy:  economy,
		rng:      rng,
	}
}

// OnboardNewUser initializes profile and wallet for a newly created
// account. Profile updates are best-effort; the chip grant is required.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.economy == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	displayName := s.generateFriendlyName()
	if err := s.accounts.UpdateProfile(ctx, userID, displayName, displayName); err != nil {
		result.ProfileUpdateErr = err
	}

	updates := []ports.WalletUpdate{
		{
			UserID: userID,
			Amount: defaultWelcomeChips,
			Metadata: map[string]interface{}{
				"reason": "welcome_chips",
			},
		},
	}
	if err := s.economy.UpdateBalances(ctx, updates); err != nil {
		return result, fmt.Errorf("failed to grant welcome chips: %w", err)
	}

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Lucky", "Shiny", "Brave", "Clever", "Swift", "Calm", "Mighty", "Witty", "Sly", "Bold"}
	nouns := []string{"Knocker", "Dealer", "Maverick", "Joker", "Shark", "Whale", "Falcon", "Gambit", "Ace", "Duke"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
