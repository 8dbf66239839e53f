package pending

import "context"

type Repository interface {
	Create(ctx context.Context, p *PendingTransaction) error
	GetByPendingID(ctx context.Context, pendingID string) (*PendingTransaction, error)
	// GetByPendingIDForUpdate locks the row so two admins cannot adjudicate
	// the same request concurrently.
	GetByPendingIDForUpdate(ctx context.Context, pendingID string) (*PendingTransaction, error)
	ListByStatus(ctx context.Context, status Status) ([]PendingTransaction, error)
	ListByUserID(ctx context.Context, userID string) ([]PendingTransaction, error)
	Save(ctx context.Context, p *PendingTransaction) error
}
