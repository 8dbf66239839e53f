package investment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

var ErrNoInvestments = errors.New("deal has no completed investments")

// Investment is a completed capital allocation to a deal. Immutable once
// completed; it is the basis for proportional repayment distribution.
type Investment struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string          `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	InvestorID   string          `gorm:"size:32;index:idx_investments_investor" json:"investor_id"`
	DealID       string          `gorm:"size:32;index:idx_investments_deal" json:"deal_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Status       Status          `gorm:"type:enum('pending','completed');default:'pending'" json:"status"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Investment) TableName() string { return "investments" }
