package investment

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, i *Investment) error
	// ListCompletedByDealID returns completed investments in creation order;
	// the distribution calculator depends on that ordering.
	ListCompletedByDealID(ctx context.Context, dealID string) ([]Investment, error)
	ListByInvestorID(ctx context.Context, investorID string) ([]Investment, error)
	SumCompletedByDealID(ctx context.Context, dealID string) (decimal.Decimal, error)
}
