package mysql

import (
	"context"

	pendingDomain "brickvest-backend/internal/domain/pending"

	"gorm.io/gorm"
)

type PendingRepository struct{ db *gorm.DB }

func NewPendingRepository(db *gorm.DB) *PendingRepository { return &PendingRepository{db: db} }

func (r *PendingRepository) Create(ctx context.Context, p *pendingDomain.PendingTransaction) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PendingRepository) GetByPendingID(ctx context.Context, pendingID string) (*pendingDomain.PendingTransaction, error) {
	var out pendingDomain.PendingTransaction
	res := r.db.WithContext(ctx).Where("pending_id = ?", pendingID).First(&out)
	return &out, res.Error
}

func (r *PendingRepository) GetByPendingIDForUpdate(ctx context.Context, pendingID string) (*pendingDomain.PendingTransaction, error) {
	var out pendingDomain.PendingTransaction
	res := forUpdate(r.db.WithContext(ctx)).Where("pending_id = ?", pendingID).First(&out)
	return &out, res.Error
}

func (r *PendingRepository) ListByStatus(ctx context.Context, status pendingDomain.Status) ([]pendingDomain.PendingTransaction, error) {
	var out []pendingDomain.PendingTransaction
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *PendingRepository) ListByUserID(ctx context.Context, userID string) ([]pendingDomain.PendingTransaction, error) {
	var out []pendingDomain.PendingTransaction
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PendingRepository) Save(ctx context.Context, p *pendingDomain.PendingTransaction) error {
	return r.db.WithContext(ctx).Save(p).Error
}
