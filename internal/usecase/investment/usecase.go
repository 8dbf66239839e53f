package investment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/domain/investment"
)

// Usecase serves the investor's portfolio view.
type Usecase struct{ repo investment.Repository }

func NewUsecase(r investment.Repository) *Usecase { return &Usecase{repo: r} }

type InvestmentDTO struct {
	InvestmentID string          `json:"investment_id"`
	DealID       string          `json:"deal_id"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ListMine returns the caller's investments, newest first.
func (u *Usecase) ListMine(ctx context.Context, p auth.Principal) ([]InvestmentDTO, error) {
	rows, err := u.repo.ListByInvestorID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, InvestmentDTO{
			InvestmentID: row.InvestmentID,
			DealID:       row.DealID,
			Amount:       row.Amount,
			Status:       string(row.Status),
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}
