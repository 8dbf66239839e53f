package decision

import (
	"github.com/shopspring/decimal"

	"brickvest-backend/internal/domain/investment"
)

// InvestorShare is one investor's cut of a repayment.
type InvestorShare struct {
	InvestorID string
	Amount     decimal.Decimal
}

// Distribute splits a repayment across investors proportionally to their
// invested amounts: share_i = repayment * amount_i / total. Each share is
// rounded to cents and the last investor absorbs the rounding remainder, so
// the shares always sum to the repayment exactly.
func Distribute(investments []investment.Investment, repayment decimal.Decimal) ([]InvestorShare, error) {
	if len(investments) == 0 {
		return nil, investment.ErrNoInvestments
	}

	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(inv.Amount)
	}
	if !total.IsPositive() {
		return nil, investment.ErrNoInvestments
	}

	shares := make([]InvestorShare, 0, len(investments))
	distributed := decimal.Zero
	for i, inv := range investments {
		var share decimal.Decimal
		if i == len(investments)-1 {
			share = repayment.Sub(distributed)
		} else {
			share = repayment.Mul(inv.Amount).Div(total).Round(2)
			distributed = distributed.Add(share)
		}
		shares = append(shares, InvestorShare{InvestorID: inv.InvestorID, Amount: share})
	}
	return shares, nil
}
