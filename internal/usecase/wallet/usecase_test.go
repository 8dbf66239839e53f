package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"brickvest-backend/internal/adapter/repository/mysql"
	"brickvest-backend/internal/auth"
	domainLedger "brickvest-backend/internal/domain/ledger"
	"brickvest-backend/internal/domain/user"
	domainWallet "brickvest-backend/internal/domain/wallet"
	"brickvest-backend/internal/testutil/testdb"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func setup(t *testing.T) (*Usecase, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	return NewUsecase(mysql.NewGormUoW(db)), db
}

var (
	investor = auth.Principal{UserID: "inv-1", Role: user.RoleInvestor}
	admin    = auth.Principal{UserID: "adm-1", Role: user.RoleAdmin}
)

func TestOverview_CreatesWalletLazily(t *testing.T) {
	uc, _ := setup(t)
	dto, err := uc.Overview(context.Background(), investor)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if !dto.Balance.IsZero() {
		t.Errorf("fresh wallet balance = %s, want 0", dto.Balance)
	}
	if len(dto.Transactions) != 0 {
		t.Errorf("fresh wallet has %d transactions", len(dto.Transactions))
	}
}

func TestDeposit(t *testing.T) {
	uc, db := setup(t)
	ctx := context.Background()

	dto, err := uc.Deposit(ctx, investor, dec("250.50"))
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if !dto.Balance.Equal(dec("250.50")) {
		t.Errorf("balance = %s, want 250.50", dto.Balance)
	}

	txs, err := mysql.NewLedgerRepository(db).ListByUserID(ctx, investor.UserID, 10)
	if err != nil {
		t.Fatalf("list ledger: %v", err)
	}
	if len(txs) != 1 || txs[0].Type != domainLedger.TypeDeposit || txs[0].Status != domainLedger.StatusCompleted {
		t.Fatalf("unexpected ledger rows: %+v", txs)
	}

	if _, err := uc.Deposit(ctx, investor, dec("-10")); !errors.Is(err, domainLedger.ErrInvalidAmount) {
		t.Errorf("negative deposit: want ErrInvalidAmount, got %v", err)
	}
}

func TestSubmitWithdrawal_NoFundsHeld(t *testing.T) {
	uc, db := setup(t)
	ctx := context.Background()

	if _, err := uc.Deposit(ctx, investor, dec("500")); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	dto, err := uc.SubmitWithdrawal(ctx, investor, dec("200"))
	if err != nil {
		t.Fatalf("SubmitWithdrawal: %v", err)
	}
	if dto.Status != string(domainLedger.StatusPending) {
		t.Errorf("status = %s, want pending", dto.Status)
	}
	if !dto.Amount.Equal(dec("-200")) {
		t.Errorf("amount = %s, want -200", dto.Amount)
	}

	// balance untouched until adjudication
	w, err := mysql.NewWalletRepository(db).GetByUserID(ctx, investor.UserID)
	if err != nil {
		t.Fatalf("read wallet: %v", err)
	}
	if !w.Balance.Equal(dec("500")) {
		t.Errorf("balance = %s, want 500", w.Balance)
	}
}

func TestDecideTransaction_Approve(t *testing.T) {
	uc, db := setup(t)
	ctx := context.Background()

	if _, err := uc.Deposit(ctx, investor, dec("500")); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	wd, err := uc.SubmitWithdrawal(ctx, investor, dec("200"))
	if err != nil {
		t.Fatalf("SubmitWithdrawal: %v", err)
	}

	dto, err := uc.DecideTransaction(ctx, admin, wd.TxID, DecisionApprove)
	if err != nil {
		t.Fatalf("DecideTransaction: %v", err)
	}
	if dto.Status != string(domainLedger.StatusCompleted) {
		t.Errorf("status = %s, want completed", dto.Status)
	}
	w, err := mysql.NewWalletRepository(db).GetByUserID(ctx, investor.UserID)
	if err != nil {
		t.Fatalf("read wallet: %v", err)
	}
	if !w.Balance.Equal(dec("300")) {
		t.Errorf("balance = %s, want 300", w.Balance)
	}

	// a finalized row cannot be decided again
	if _, err := uc.DecideTransaction(ctx, admin, wd.TxID, DecisionApprove); !errors.Is(err, domainLedger.ErrInvalidState) {
		t.Errorf("second decide: want ErrInvalidState, got %v", err)
	}
}

func TestDecideTransaction_ApproveInsufficient(t *testing.T) {
	uc, db := setup(t)
	ctx := context.Background()

	if _, err := uc.Deposit(ctx, investor, dec("100")); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	wd, err := uc.SubmitWithdrawal(ctx, investor, dec("200"))
	if err != nil {
		t.Fatalf("SubmitWithdrawal: %v", err)
	}

	if _, err := uc.DecideTransaction(ctx, admin, wd.TxID, DecisionApprove); !errors.Is(err, domainWallet.ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance, got %v", err)
	}
	// rolled back: row still pending, wallet untouched
	row, err := mysql.NewLedgerRepository(db).GetByTxID(ctx, wd.TxID)
	if err != nil {
		t.Fatalf("read row: %v", err)
	}
	if row.Status != domainLedger.StatusPending {
		t.Errorf("row status = %s, want pending", row.Status)
	}
}

func TestDecideTransaction_Reject(t *testing.T) {
	uc, db := setup(t)
	ctx := context.Background()

	if _, err := uc.Deposit(ctx, investor, dec("500")); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	wd, err := uc.SubmitWithdrawal(ctx, investor, dec("200"))
	if err != nil {
		t.Fatalf("SubmitWithdrawal: %v", err)
	}

	dto, err := uc.DecideTransaction(ctx, admin, wd.TxID, DecisionReject)
	if err != nil {
		t.Fatalf("DecideTransaction: %v", err)
	}
	if dto.Status != string(domainLedger.StatusFailed) {
		t.Errorf("status = %s, want failed", dto.Status)
	}
	w, err := mysql.NewWalletRepository(db).GetByUserID(ctx, investor.UserID)
	if err != nil {
		t.Fatalf("read wallet: %v", err)
	}
	if !w.Balance.Equal(dec("500")) {
		t.Errorf("balance = %s, want 500", w.Balance)
	}
}

func TestDecideTransaction_Guards(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	if _, err := uc.DecideTransaction(ctx, investor, "tx-1", DecisionApprove); !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("non-admin: want ErrForbidden, got %v", err)
	}
	if _, err := uc.DecideTransaction(ctx, admin, "missing", DecisionApprove); !errors.Is(err, domainLedger.ErrNotFound) {
		t.Errorf("missing tx: want ErrNotFound, got %v", err)
	}

	// deposits are never adjudicated
	if _, err := uc.Deposit(ctx, investor, dec("50")); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	dto, err := uc.Overview(ctx, investor)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if len(dto.Transactions) != 1 {
		t.Fatalf("want 1 ledger row, got %d", len(dto.Transactions))
	}
	if _, err := uc.DecideTransaction(ctx, admin, dto.Transactions[0].TxID, DecisionApprove); !errors.Is(err, domainLedger.ErrInvalidState) {
		t.Errorf("deciding a deposit: want ErrInvalidState, got %v", err)
	}
}
