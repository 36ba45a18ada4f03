package ports

import "context"

// WalletUpdate represents a single chip balance change for a user.
type WalletUpdate struct {
	UserID   string
	Amount   int64
	Metadata map[string]interface{}
}

// EconomyPort defines the interface for managing game currency.
type EconomyPort interface {
	// GetBalance retrieves the current chip balance for a user.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// UpdateBalances applies multiple wallet changes atomically. Round
	// settlement uses this to move the stake between the seats.
	UpdateBalances(ctx context.Context, updates []WalletUpdate) error
}
