package pending

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeInvestment Type = "investment"
	TypeRepayment  Type = "repayment"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound      = errors.New("pending transaction not found")
	ErrInvalidState  = errors.New("pending transaction already decided")
	ErrInvalidAmount = errors.New("amount must be positive")
)

// PendingTransaction is an investor/lender request awaiting an admin decision.
// The terminal transition (approved/rejected) happens exactly once; the row is
// immutable thereafter.
type PendingTransaction struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	PendingID string          `gorm:"size:32;uniqueIndex:ux_pending_pending_id" json:"pending_id"`
	UserID    string          `gorm:"size:32;index:idx_pending_user" json:"user_id"`
	DealID    string          `gorm:"size:32;index:idx_pending_deal" json:"deal_id"`
	Type      Type            `gorm:"type:enum('investment','repayment')" json:"type"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Status    Status          `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	DecidedBy string          `gorm:"size:32" json:"decided_by,omitempty"`
	DecidedAt *time.Time      `json:"decided_at,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PendingTransaction) TableName() string { return "pending_transactions" }
