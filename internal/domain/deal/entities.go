package deal

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusFunded    Status = "funded"
	StatusActive    Status = "active"
	StatusRepaid    Status = "repaid"
)

var (
	ErrNotFound          = errors.New("deal not found")
	ErrInvalidTransition = errors.New("invalid deal state transition")
)

// Deal is a loan opportunity owned by a lender. Lifecycle:
// submitted -> approved/rejected -> funded (investments reach loan_amount)
// -> repaid (after repayment distribution).
type Deal struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	DealID           string          `gorm:"size:32;uniqueIndex:ux_deals_deal_id_active" json:"deal_id"`
	LenderID         string          `gorm:"size:32;index:idx_deals_lender" json:"lender_id"`
	Title            string          `gorm:"size:255" json:"title"`
	Description      string          `gorm:"type:text" json:"description"`
	LoanAmount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"loan_amount"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TermMonths       int             `gorm:"column:term_months" json:"term_months"`
	LTV              decimal.Decimal `gorm:"column:ltv;type:decimal(6,2)" json:"ltv"`
	PropertyType     string          `gorm:"size:64" json:"property_type"`
	PropertyLocation string          `gorm:"size:255" json:"property_location"`
	Status           Status          `gorm:"type:enum('submitted','approved','rejected','funded','active','repaid');default:'submitted'" json:"status"`
	StatusUpdatedAt  time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Deal) TableName() string { return "deals" }

// Payoff is the amount that closes the loan: principal plus simple interest
// (principal * rate/100 * term_months/12), rounded to cents.
func (d *Deal) Payoff() decimal.Decimal {
	interest := d.LoanAmount.
		Mul(d.InterestRate).
		Mul(decimal.NewFromInt(int64(d.TermMonths))).
		Div(decimal.NewFromInt(1200))
	return d.LoanAmount.Add(interest).Round(2)
}
