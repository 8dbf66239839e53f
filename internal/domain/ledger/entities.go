package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeInvestment Type = "investment"
	TypeRepayment  Type = "repayment"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidState  = errors.New("transaction already finalized")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Transaction is an append-only ledger row. Amount is signed: positive for
// inflow to the user's wallet, negative for outflow. The only mutation ever
// applied is the status transition pending -> completed/failed.
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	TxID        string          `gorm:"size:32;uniqueIndex:ux_transactions_tx_id" json:"tx_id"`
	UserID      string          `gorm:"size:32;index:idx_transactions_user" json:"user_id"`
	Type        Type            `gorm:"type:enum('deposit','withdrawal','investment','repayment')" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Status      Status          `gorm:"type:enum('pending','completed','failed');default:'pending'" json:"status"`
	ReferenceID string          `gorm:"size:64;index:idx_transactions_reference" json:"reference_id,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string { return "transactions" }
