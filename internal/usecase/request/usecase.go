package request

import (
	"context"
	"errors"
	"time"

	"brickvest-backend/internal/auth"
	domainDeal "brickvest-backend/internal/domain/deal"
	domainPending "brickvest-backend/internal/domain/pending"
	domainUser "brickvest-backend/internal/domain/user"
	domainWallet "brickvest-backend/internal/domain/wallet"
	"brickvest-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase is the pending request queue: investors and lenders submit here,
// admins decide elsewhere. Submission never moves funds.
type Usecase struct {
	deals    domainDeal.Repository
	wallets  domainWallet.Repository
	pendings domainPending.Repository
}

func NewUsecase(deals domainDeal.Repository, wallets domainWallet.Repository, pendings domainPending.Repository) *Usecase {
	return &Usecase{deals: deals, wallets: wallets, pendings: pendings}
}

type SubmitInvestmentInput struct {
	DealID string
	Amount decimal.Decimal
}

type PendingDTO struct {
	PendingID string          `json:"pending_id"`
	DealID    string          `json:"deal_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// SubmitInvestment queues an investment request. Balance is NOT checked here:
// sufficiency is enforced at approval time, when funds actually move.
func (u *Usecase) SubmitInvestment(ctx context.Context, p auth.Principal, in SubmitInvestmentInput) (*PendingDTO, error) {
	if err := auth.RequireRole(p, domainUser.RoleInvestor); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domainPending.ErrInvalidAmount
	}

	d, err := u.deals.GetByDealID(ctx, in.DealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainDeal.ErrNotFound
		}
		return nil, err
	}

	pt := &domainPending.PendingTransaction{
		PendingID: id.NewID32(),
		UserID:    p.UserID,
		DealID:    d.DealID,
		Type:      domainPending.TypeInvestment,
		Amount:    in.Amount.Round(2),
		Status:    domainPending.StatusPending,
	}
	if err := u.pendings.Create(ctx, pt); err != nil {
		return nil, err
	}
	return toDTO(pt), nil
}

// SubmitRepayment queues a repayment for the full payoff amount (principal +
// simple interest). The lender must own the deal and hold at least the payoff
// in their wallet at submission time.
func (u *Usecase) SubmitRepayment(ctx context.Context, p auth.Principal, dealID string) (*PendingDTO, error) {
	if err := auth.RequireRole(p, domainUser.RoleLender); err != nil {
		return nil, err
	}

	d, err := u.deals.GetByDealID(ctx, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainDeal.ErrNotFound
		}
		return nil, err
	}
	if d.LenderID != p.UserID {
		return nil, auth.ErrForbidden
	}

	payoff := d.Payoff()

	w, err := u.wallets.GetByUserID(ctx, p.UserID)
	balance := decimal.Zero
	switch {
	case err == nil:
		balance = w.Balance
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no wallet yet: zero balance
	default:
		return nil, err
	}
	if balance.LessThan(payoff) {
		return nil, domainWallet.ErrInsufficientBalance
	}

	pt := &domainPending.PendingTransaction{
		PendingID: id.NewID32(),
		UserID:    p.UserID,
		DealID:    d.DealID,
		Type:      domainPending.TypeRepayment,
		Amount:    payoff,
		Status:    domainPending.StatusPending,
	}
	if err := u.pendings.Create(ctx, pt); err != nil {
		return nil, err
	}
	return toDTO(pt), nil
}

// ListMine returns the caller's own requests, newest first.
func (u *Usecase) ListMine(ctx context.Context, p auth.Principal) ([]PendingDTO, error) {
	rows, err := u.pendings.ListByUserID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]PendingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// ListPending returns the admin queue (oldest first).
func (u *Usecase) ListPending(ctx context.Context, p auth.Principal) ([]PendingDTO, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	rows, err := u.pendings.ListByStatus(ctx, domainPending.StatusPending)
	if err != nil {
		return nil, err
	}
	out := make([]PendingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(pt *domainPending.PendingTransaction) *PendingDTO {
	return &PendingDTO{
		PendingID: pt.PendingID,
		DealID:    pt.DealID,
		Type:      string(pt.Type),
		Amount:    pt.Amount,
		Status:    string(pt.Status),
		CreatedAt: pt.CreatedAt,
	}
}
