package payment

import (
	"context"
	"errors"
	"fmt"
	"log"

	"brickvest-backend/internal/auth"
	domainLedger "brickvest-backend/internal/domain/ledger"
	"brickvest-backend/internal/domain/uow"
	domainWallet "brickvest-backend/internal/domain/wallet"
	"brickvest-backend/pkg/id"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMetadata = errors.New("missing or invalid payment metadata")
	ErrBelowMinimum    = errors.New("deposit below minimum")
)

// minDeposit matches the gateway checkout rule: smallest accepted top-up.
var minDeposit = decimal.NewFromInt(100)

// Usecase is the external payment bridge: it hands the user off to the hosted
// checkout page and credits the wallet exactly once when the gateway confirms.
type Usecase struct {
	uow             uow.UnitOfWork
	checkoutBaseURL string
}

func NewUsecase(tx uow.UnitOfWork, checkoutBaseURL string) *Usecase {
	return &Usecase{uow: tx, checkoutBaseURL: checkoutBaseURL}
}

type CheckoutDTO struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

// CreateCheckout mints a session id and builds the hosted-checkout redirect.
// No state is stored server-side: the signed webhook carries the user id and
// amount back as session metadata.
func (u *Usecase) CreateCheckout(ctx context.Context, p auth.Principal, amount decimal.Decimal) (*CheckoutDTO, error) {
	if amount.LessThan(minDeposit) {
		return nil, ErrBelowMinimum
	}
	sessionID := id.NewSessionID()
	return &CheckoutDTO{
		SessionID: sessionID,
		RedirectURL: fmt.Sprintf("%s?session_id=%s&user_id=%s&amount=%s",
			u.checkoutBaseURL, sessionID, p.UserID, amount.Round(2)),
	}, nil
}

// OnPaymentConfirmed credits the wallet for a confirmed checkout session.
// Idempotent per session id: a ledger row referencing the session already
// existing means the credit was applied and the replay is acknowledged as a
// no-op. The lookup and the credit share one transaction.
func (u *Usecase) OnPaymentConfirmed(ctx context.Context, sessionID, userID string, amount decimal.Decimal) error {
	if sessionID == "" || userID == "" || !amount.IsPositive() {
		return ErrInvalidMetadata
	}
	amount = amount.Round(2)

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		applied, err := r.Ledger.ExistsByReference(ctx, domainLedger.TypeDeposit, sessionID)
		if err != nil {
			return err
		}
		if applied {
			log.Printf("payment session %s already credited, skipping", sessionID)
			return nil
		}

		w, err := domainWallet.Ensure(ctx, r.Wallets, userID)
		if err != nil {
			return err
		}
		w.Balance = w.Balance.Add(amount)
		if err := r.Wallets.Save(ctx, w); err != nil {
			return err
		}
		return r.Ledger.Create(ctx, &domainLedger.Transaction{
			TxID:        id.NewID32(),
			UserID:      userID,
			Type:        domainLedger.TypeDeposit,
			Amount:      amount,
			Status:      domainLedger.StatusCompleted,
			ReferenceID: sessionID,
		})
	})
}
