package mysql

import (
	"context"

	ledgerDomain "brickvest-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Create(ctx context.Context, t *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LedgerRepository) GetByTxID(ctx context.Context, txID string) (*ledgerDomain.Transaction, error) {
	var out ledgerDomain.Transaction
	res := r.db.WithContext(ctx).Where("tx_id = ?", txID).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) GetByTxIDForUpdate(ctx context.Context, txID string) (*ledgerDomain.Transaction, error) {
	var out ledgerDomain.Transaction
	res := forUpdate(r.db.WithContext(ctx)).Where("tx_id = ?", txID).First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]ledgerDomain.Transaction, error) {
	var out []ledgerDomain.Transaction
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	res := q.Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) ExistsByReference(ctx context.Context, typ ledgerDomain.Type, referenceID string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&ledgerDomain.Transaction{}).
		Where("type = ? AND reference_id = ?", typ, referenceID).
		Count(&n)
	return n > 0, res.Error
}

func (r *LedgerRepository) Save(ctx context.Context, t *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Save(t).Error
}
