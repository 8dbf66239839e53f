package wallet

import (
	"context"

	"brickvest-backend/internal/auth"
	domainLedger "brickvest-backend/internal/domain/ledger"
	"brickvest-backend/internal/domain/uow"
	domainWallet "brickvest-backend/internal/domain/wallet"
	"brickvest-backend/pkg/id"

	"github.com/shopspring/decimal"
)

// Usecase covers direct wallet operations: deposits, withdrawal requests and
// the admin adjudication of pending withdrawal rows.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type WalletDTO struct {
	UserID       string                     `json:"user_id"`
	Balance      decimal.Decimal            `json:"balance"`
	Transactions []domainLedger.Transaction `json:"transactions,omitempty"`
}

type TransactionDTO struct {
	TxID   string          `json:"tx_id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

// Overview returns the caller's balance plus recent ledger rows.
func (u *Usecase) Overview(ctx context.Context, p auth.Principal) (*WalletDTO, error) {
	var dto *WalletDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := domainWallet.Ensure(ctx, r.Wallets, p.UserID)
		if err != nil {
			return err
		}
		txs, err := r.Ledger.ListByUserID(ctx, p.UserID, 50)
		if err != nil {
			return err
		}
		dto = &WalletDTO{UserID: p.UserID, Balance: w.Balance, Transactions: txs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Deposit credits the wallet directly and appends a completed deposit row.
func (u *Usecase) Deposit(ctx context.Context, p auth.Principal, amount decimal.Decimal) (*WalletDTO, error) {
	if !amount.IsPositive() {
		return nil, domainLedger.ErrInvalidAmount
	}
	amount = amount.Round(2)

	var dto *WalletDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		w, err := domainWallet.Ensure(ctx, r.Wallets, p.UserID)
		if err != nil {
			return err
		}
		w.Balance = w.Balance.Add(amount)
		if err := r.Wallets.Save(ctx, w); err != nil {
			return err
		}
		if err := r.Ledger.Create(ctx, &domainLedger.Transaction{
			TxID:   id.NewID32(),
			UserID: p.UserID,
			Type:   domainLedger.TypeDeposit,
			Amount: amount,
			Status: domainLedger.StatusCompleted,
		}); err != nil {
			return err
		}
		dto = &WalletDTO{UserID: p.UserID, Balance: w.Balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SubmitWithdrawal appends a pending withdrawal row. No funds are held; the
// sufficiency check happens when an admin approves.
func (u *Usecase) SubmitWithdrawal(ctx context.Context, p auth.Principal, amount decimal.Decimal) (*TransactionDTO, error) {
	if !amount.IsPositive() {
		return nil, domainLedger.ErrInvalidAmount
	}
	amount = amount.Round(2)

	t := &domainLedger.Transaction{
		TxID:   id.NewID32(),
		UserID: p.UserID,
		Type:   domainLedger.TypeWithdrawal,
		Amount: amount.Neg(),
		Status: domainLedger.StatusPending,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Ledger.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return &TransactionDTO{TxID: t.TxID, Type: string(t.Type), Amount: t.Amount, Status: string(t.Status)}, nil
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// DecideTransaction finalizes a pending withdrawal row. Approval debits the
// wallet after a sufficiency check; rejection marks the row failed and leaves
// the wallet untouched.
func (u *Usecase) DecideTransaction(ctx context.Context, p auth.Principal, txID string, decision Decision) (*TransactionDTO, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}

	var dto *TransactionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Ledger.GetByTxIDForUpdate(ctx, txID)
		if err != nil {
			return domainLedger.ErrNotFound
		}
		if t.Status != domainLedger.StatusPending || t.Type != domainLedger.TypeWithdrawal {
			return domainLedger.ErrInvalidState
		}

		switch decision {
		case DecisionReject:
			t.Status = domainLedger.StatusFailed
		case DecisionApprove:
			w, err := domainWallet.Ensure(ctx, r.Wallets, t.UserID)
			if err != nil {
				return err
			}
			debit := t.Amount.Abs()
			if w.Balance.LessThan(debit) {
				return domainWallet.ErrInsufficientBalance
			}
			w.Balance = w.Balance.Sub(debit)
			if err := r.Wallets.Save(ctx, w); err != nil {
				return err
			}
			t.Status = domainLedger.StatusCompleted
		default:
			return domainLedger.ErrInvalidState
		}

		if err := r.Ledger.Save(ctx, t); err != nil {
			return err
		}
		dto = &TransactionDTO{TxID: t.TxID, Type: string(t.Type), Amount: t.Amount, Status: string(t.Status)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
