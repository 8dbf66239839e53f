package mysql

import (
	"context"
	"errors"

	"brickvest-backend/internal/domain/pending"
	"brickvest-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:       &UserRepository{db: tx},
		Wallets:     &WalletRepository{db: tx},
		Deals:       &DealRepository{db: tx},
		Pendings:    &PendingRepository{db: tx},
		Ledger:      &LedgerRepository{db: tx},
		Investments: &InvestmentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinPendingTx(ctx context.Context, pendingID string, fn func(r uow.Repos, p *pending.PendingTransaction) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the pending row up-front so a request is adjudicated once
		p, err := r.Pendings.GetByPendingIDForUpdate(ctx, pendingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pending.ErrNotFound
			}
			return err
		}
		return fn(r, p)
	})
}
