package wallet

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// Wallet holds one balance per user. Balance never goes below zero: every
// debit path must check sufficiency before mutating.
type Wallet struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	UserID    string          `gorm:"size:32;uniqueIndex:ux_wallets_user_id" json:"user_id"`
	Balance   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }
