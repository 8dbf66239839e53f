package wallet

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, w *Wallet) error
	GetByUserID(ctx context.Context, userID string) (*Wallet, error)
	// GetByUserIDForUpdate locks the row (SELECT ... FOR UPDATE) inside a tx.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*Wallet, error)
	Save(ctx context.Context, w *Wallet) error
}

// Ensure returns the user's wallet, creating it with a zero balance if absent.
// The read takes a row lock, so callers inside a tx hold the wallet until
// commit. This is the single lazy-creation point for every balance mutator.
func Ensure(ctx context.Context, r Repository, userID string) (*Wallet, error) {
	w, err := r.GetByUserIDForUpdate(ctx, userID)
	switch {
	case err == nil:
		return w, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		w = &Wallet{UserID: userID, Balance: decimal.Zero}
		if err := r.Create(ctx, w); err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, err
	}
}
