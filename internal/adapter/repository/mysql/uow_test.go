package mysql

import (
	"context"
	"errors"
	"testing"

	pendingDomain "brickvest-backend/internal/domain/pending"
	"brickvest-backend/internal/domain/uow"
	walletDomain "brickvest-backend/internal/domain/wallet"
	"brickvest-backend/internal/testutil/testdb"
	"brickvest-backend/pkg/id"
)

func TestGormUoW_Commit(t *testing.T) {
	db := testdb.Open(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Wallets.Create(ctx, &walletDomain.Wallet{UserID: "usr-1", Balance: dec("100")}); err != nil {
			return err
		}
		return r.Wallets.Create(ctx, &walletDomain.Wallet{UserID: "usr-2", Balance: dec("200")})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	repo := NewWalletRepository(db)
	for _, userID := range []string{"usr-1", "usr-2"} {
		if _, err := repo.GetByUserID(ctx, userID); err != nil {
			t.Errorf("wallet %s not committed: %v", userID, err)
		}
	}
}

func TestGormUoW_RollbackOnError(t *testing.T) {
	db := testdb.Open(t)
	u := NewGormUoW(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Wallets.Create(ctx, &walletDomain.Wallet{UserID: "usr-1", Balance: dec("100")}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	if _, err := NewWalletRepository(db).GetByUserID(ctx, "usr-1"); err == nil {
		t.Fatal("wallet survived a rolled-back transaction")
	}
}

func TestGormUoW_WithinPendingTx(t *testing.T) {
	db := testdb.Open(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	seeded := &pendingDomain.PendingTransaction{
		PendingID: id.NewID32(),
		UserID:    "inv-1",
		DealID:    "deal-1",
		Type:      pendingDomain.TypeInvestment,
		Amount:    dec("3000"),
		Status:    pendingDomain.StatusPending,
	}
	if err := NewPendingRepository(db).Create(ctx, seeded); err != nil {
		t.Fatalf("seed pending: %v", err)
	}

	err := u.WithinPendingTx(ctx, seeded.PendingID, func(r uow.Repos, p *pendingDomain.PendingTransaction) error {
		if p.PendingID != seeded.PendingID || !p.Amount.Equal(dec("3000")) {
			t.Fatalf("unexpected locked row: %+v", p)
		}
		p.Status = pendingDomain.StatusApproved
		return r.Pendings.Save(ctx, p)
	})
	if err != nil {
		t.Fatalf("WithinPendingTx: %v", err)
	}

	got, err := NewPendingRepository(db).GetByPendingID(ctx, seeded.PendingID)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Status != pendingDomain.StatusApproved {
		t.Errorf("status = %s, want approved", got.Status)
	}
}

func TestGormUoW_WithinPendingTx_NotFound(t *testing.T) {
	u := NewGormUoW(testdb.Open(t))
	err := u.WithinPendingTx(context.Background(), "missing", func(r uow.Repos, p *pendingDomain.PendingTransaction) error {
		t.Fatal("callback must not run for a missing row")
		return nil
	})
	if !errors.Is(err, pendingDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
