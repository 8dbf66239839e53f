package mysql

import (
	"context"

	dealDomain "brickvest-backend/internal/domain/deal"

	"gorm.io/gorm"
)

type DealRepository struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) *DealRepository { return &DealRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx.
func (r *DealRepository) Tx(ctx context.Context, fn func(repo dealDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DealRepository{db: tx})
	})
}

func (r *DealRepository) Create(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DealRepository) GetByDealID(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := r.db.WithContext(ctx).Where("deal_id = ?", dealID).First(&out)
	return &out, res.Error
}

func (r *DealRepository) GetByDealIDForUpdate(ctx context.Context, dealID string) (*dealDomain.Deal, error) {
	var out dealDomain.Deal
	res := forUpdate(r.db.WithContext(ctx)).Where("deal_id = ?", dealID).First(&out)
	return &out, res.Error
}

func (r *DealRepository) ListByStatus(ctx context.Context, statuses ...dealDomain.Status) ([]dealDomain.Deal, error) {
	var out []dealDomain.Deal
	res := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DealRepository) ListByLenderID(ctx context.Context, lenderID string) ([]dealDomain.Deal, error) {
	var out []dealDomain.Deal
	res := r.db.WithContext(ctx).
		Where("lender_id = ?", lenderID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DealRepository) Save(ctx context.Context, d *dealDomain.Deal) error {
	return r.db.WithContext(ctx).Save(d).Error
}
