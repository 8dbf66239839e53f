package mysql

import (
	"context"

	investmentDomain "brickvest-backend/internal/domain/investment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, i *investmentDomain.Investment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InvestmentRepository) ListCompletedByDealID(ctx context.Context, dealID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("deal_id = ? AND status = ?", dealID, investmentDomain.StatusCompleted).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorID string) ([]investmentDomain.Investment, error) {
	var out []investmentDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) SumCompletedByDealID(ctx context.Context, dealID string) (decimal.Decimal, error) {
	// COALESCE so a deal with no investments sums to 0, not NULL
	var raw decimal.NullDecimal
	res := r.db.WithContext(ctx).
		Model(&investmentDomain.Investment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("deal_id = ? AND status = ?", dealID, investmentDomain.StatusCompleted).
		Scan(&raw)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !raw.Valid {
		return decimal.Zero, nil
	}
	return raw.Decimal, nil
}
