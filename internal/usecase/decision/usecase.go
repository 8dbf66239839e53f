package decision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"brickvest-backend/internal/auth"
	domainDeal "brickvest-backend/internal/domain/deal"
	domainInvestment "brickvest-backend/internal/domain/investment"
	domainLedger "brickvest-backend/internal/domain/ledger"
	domainPending "brickvest-backend/internal/domain/pending"
	domainWallet "brickvest-backend/internal/domain/wallet"
	"brickvest-backend/internal/domain/uow"
	"brickvest-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the admin decision engine: it turns an approved pending request
// into wallet movements, ledger rows and investment/deal updates. Every
// approval runs inside one database transaction, so a failure at any step
// rolls the whole movement back and the request stays pending.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Decide(ctx context.Context, p auth.Principal, in DecideInput) (*DecisionDTO, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	if u.uow == nil {
		return nil, domainPending.ErrInvalidState
	}
	if in.Decision != DecisionApprove && in.Decision != DecisionReject {
		return nil, fmt.Errorf("unknown decision %q", in.Decision)
	}

	var dto *DecisionDTO
	err := u.uow.WithinPendingTx(ctx, in.PendingID, func(r uow.Repos, pt *domainPending.PendingTransaction) error {
		// State guard: only pending requests can be decided
		if pt.Status != domainPending.StatusPending {
			return domainPending.ErrInvalidState
		}

		if in.Decision == DecisionApprove {
			switch pt.Type {
			case domainPending.TypeInvestment:
				if err := u.approveInvestment(ctx, r, pt); err != nil {
					return err
				}
			case domainPending.TypeRepayment:
				if err := u.approveRepayment(ctx, r, pt); err != nil {
					return err
				}
			default:
				return domainPending.ErrInvalidState
			}
			pt.Status = domainPending.StatusApproved
		} else {
			// Rejection moves no funds: nothing was escrowed at submission.
			pt.Status = domainPending.StatusRejected
		}

		now := time.Now().UTC()
		pt.DecidedBy = p.UserID
		pt.DecidedAt = &now
		if err := r.Pendings.Save(ctx, pt); err != nil {
			return err
		}

		dto = &DecisionDTO{
			PendingID: pt.PendingID,
			Type:      string(pt.Type),
			Amount:    pt.Amount,
			Status:    string(pt.Status),
			DecidedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// approveInvestment moves the amount from the investor's wallet to the
// lender's, records the Investment and both ledger rows, and flips the deal
// to funded once completed investments reach the loan amount. Over-funding is
// permitted: the crossing investment is accepted in full, not clamped.
func (u *Usecase) approveInvestment(ctx context.Context, r uow.Repos, pt *domainPending.PendingTransaction) error {
	d, err := r.Deals.GetByDealIDForUpdate(ctx, pt.DealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainDeal.ErrNotFound
		}
		return err
	}

	iw, err := domainWallet.Ensure(ctx, r.Wallets, pt.UserID)
	if err != nil {
		return err
	}
	if iw.Balance.LessThan(pt.Amount) {
		return domainWallet.ErrInsufficientBalance
	}

	iw.Balance = iw.Balance.Sub(pt.Amount)
	if err := r.Wallets.Save(ctx, iw); err != nil {
		return err
	}

	if err := r.Investments.Create(ctx, &domainInvestment.Investment{
		InvestmentID: id.NewID32(),
		InvestorID:   pt.UserID,
		DealID:       d.DealID,
		Amount:       pt.Amount,
		Status:       domainInvestment.StatusCompleted,
	}); err != nil {
		return err
	}

	if err := r.Ledger.Create(ctx, &domainLedger.Transaction{
		TxID:        id.NewID32(),
		UserID:      pt.UserID,
		Type:        domainLedger.TypeInvestment,
		Amount:      pt.Amount.Neg(),
		Status:      domainLedger.StatusCompleted,
		ReferenceID: d.DealID,
	}); err != nil {
		return err
	}

	lw, err := domainWallet.Ensure(ctx, r.Wallets, d.LenderID)
	if err != nil {
		return err
	}
	lw.Balance = lw.Balance.Add(pt.Amount)
	if err := r.Wallets.Save(ctx, lw); err != nil {
		return err
	}

	if err := r.Ledger.Create(ctx, &domainLedger.Transaction{
		TxID:        id.NewID32(),
		UserID:      d.LenderID,
		Type:        domainLedger.TypeInvestment,
		Amount:      pt.Amount,
		Status:      domainLedger.StatusCompleted,
		ReferenceID: d.DealID,
	}); err != nil {
		return err
	}

	total, err := r.Investments.SumCompletedByDealID(ctx, d.DealID)
	if err != nil {
		return err
	}
	if total.GreaterThanOrEqual(d.LoanAmount) && d.Status != domainDeal.StatusFunded {
		d.Status = domainDeal.StatusFunded
		d.StatusUpdatedAt = time.Now().UTC()
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}
		log.Printf("deal %s funded: total invested %s of %s", d.DealID, total, d.LoanAmount)
	}
	return nil
}

// approveRepayment debits the lender for the full payoff and distributes it
// across the deal's completed investments proportionally.
func (u *Usecase) approveRepayment(ctx context.Context, r uow.Repos, pt *domainPending.PendingTransaction) error {
	d, err := r.Deals.GetByDealIDForUpdate(ctx, pt.DealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainDeal.ErrNotFound
		}
		return err
	}

	lw, err := domainWallet.Ensure(ctx, r.Wallets, pt.UserID)
	if err != nil {
		return err
	}
	if lw.Balance.LessThan(pt.Amount) {
		return domainWallet.ErrInsufficientBalance
	}

	invs, err := r.Investments.ListCompletedByDealID(ctx, d.DealID)
	if err != nil {
		return err
	}
	shares, err := Distribute(invs, pt.Amount)
	if err != nil {
		return err
	}

	lw.Balance = lw.Balance.Sub(pt.Amount)
	if err := r.Wallets.Save(ctx, lw); err != nil {
		return err
	}
	if err := r.Ledger.Create(ctx, &domainLedger.Transaction{
		TxID:        id.NewID32(),
		UserID:      pt.UserID,
		Type:        domainLedger.TypeRepayment,
		Amount:      pt.Amount.Neg(),
		Status:      domainLedger.StatusCompleted,
		ReferenceID: d.DealID,
	}); err != nil {
		return err
	}

	for _, s := range shares {
		iw, err := domainWallet.Ensure(ctx, r.Wallets, s.InvestorID)
		if err != nil {
			return err
		}
		iw.Balance = iw.Balance.Add(s.Amount)
		if err := r.Wallets.Save(ctx, iw); err != nil {
			return err
		}
		if err := r.Ledger.Create(ctx, &domainLedger.Transaction{
			TxID:        id.NewID32(),
			UserID:      s.InvestorID,
			Type:        domainLedger.TypeRepayment,
			Amount:      s.Amount,
			Status:      domainLedger.StatusCompleted,
			ReferenceID: d.DealID,
		}); err != nil {
			return err
		}
	}

	d.Status = domainDeal.StatusRepaid
	d.StatusUpdatedAt = time.Now().UTC()
	return r.Deals.Save(ctx, d)
}
