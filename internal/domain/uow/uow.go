package uow

import (
	"context"

	"brickvest-backend/internal/domain/deal"
	"brickvest-backend/internal/domain/investment"
	"brickvest-backend/internal/domain/ledger"
	"brickvest-backend/internal/domain/pending"
	"brickvest-backend/internal/domain/user"
	"brickvest-backend/internal/domain/wallet"
)

type Repos struct {
	Users       user.Repository
	Wallets     wallet.Repository
	Deals       deal.Repository
	Pendings    pending.Repository
	Ledger      ledger.Repository
	Investments investment.Repository
}

// UnitOfWork binds all repositories to one database transaction so a
// multi-wallet fund movement is applied fully or not at all.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the pending request first, then pass it in
	WithinPendingTx(ctx context.Context, pendingID string, fn func(r Repos, p *pending.PendingTransaction) error) error
}
