package ledger

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByTxID(ctx context.Context, txID string) (*Transaction, error)
	GetByTxIDForUpdate(ctx context.Context, txID string) (*Transaction, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]Transaction, error)
	// ExistsByReference reports whether a row of the given type already
	// references the external id. Used for exactly-once webhook credits.
	ExistsByReference(ctx context.Context, typ Type, referenceID string) (bool, error)
	Save(ctx context.Context, t *Transaction) error
}
