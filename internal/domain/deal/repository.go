package deal

import "context"

type Repository interface {
	// Tx runs fn against a repository bound to one database transaction.
	Tx(ctx context.Context, fn func(repo Repository) error) error
	Create(ctx context.Context, d *Deal) error
	GetByDealID(ctx context.Context, dealID string) (*Deal, error)
	// GetByDealIDForUpdate locks the deal row inside a tx.
	GetByDealIDForUpdate(ctx context.Context, dealID string) (*Deal, error)
	ListByStatus(ctx context.Context, statuses ...Status) ([]Deal, error)
	ListByLenderID(ctx context.Context, lenderID string) ([]Deal, error)
	Save(ctx context.Context, d *Deal) error
}
