// Package testdb opens an in-memory sqlite database with a sqlite-safe mirror
// of the production schema. The domain models carry MySQL enum column types
// that sqlite cannot migrate, so tests migrate these mirrors instead; the
// repositories then read and write the same table and column names.
package testdb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type userSQLite struct {
	ID                 uint64 `gorm:"primaryKey;column:id;autoIncrement"`
	UserID             string `gorm:"size:32;uniqueIndex;column:user_id"`
	Email              string `gorm:"size:255;column:email"`
	FullName           string `gorm:"size:255;column:full_name"`
	Role               string `gorm:"size:16;column:role"`
	VerificationStatus string `gorm:"size:16;column:verification_status"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt
}

func (userSQLite) TableName() string { return "users" }

type walletSQLite struct {
	ID        uint64          `gorm:"primaryKey;column:id;autoIncrement"`
	UserID    string          `gorm:"size:32;uniqueIndex;column:user_id"`
	Balance   decimal.Decimal `gorm:"type:decimal(18,2);column:balance"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (walletSQLite) TableName() string { return "wallets" }

type dealSQLite struct {
	ID               uint64          `gorm:"primaryKey;column:id;autoIncrement"`
	DealID           string          `gorm:"size:32;uniqueIndex;column:deal_id"`
	LenderID         string          `gorm:"size:32;column:lender_id"`
	Title            string          `gorm:"size:255;column:title"`
	Description      string          `gorm:"column:description"`
	LoanAmount       decimal.Decimal `gorm:"type:decimal(18,2);column:loan_amount"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(6,2);column:interest_rate"`
	TermMonths       int             `gorm:"column:term_months"`
	LTV              decimal.Decimal `gorm:"type:decimal(6,2);column:ltv"`
	PropertyType     string          `gorm:"size:64;column:property_type"`
	PropertyLocation string          `gorm:"size:255;column:property_location"`
	Status           string          `gorm:"size:16;column:status"`
	StatusUpdatedAt  time.Time       `gorm:"column:status_updated_at"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt
}

func (dealSQLite) TableName() string { return "deals" }

type pendingSQLite struct {
	ID        uint64          `gorm:"primaryKey;column:id;autoIncrement"`
	PendingID string          `gorm:"size:32;uniqueIndex;column:pending_id"`
	UserID    string          `gorm:"size:32;column:user_id"`
	DealID    string          `gorm:"size:32;column:deal_id"`
	Type      string          `gorm:"size:16;column:type"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);column:amount"`
	Status    string          `gorm:"size:16;column:status"`
	DecidedBy string          `gorm:"size:32;column:decided_by"`
	DecidedAt *time.Time      `gorm:"column:decided_at"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (pendingSQLite) TableName() string { return "pending_transactions" }

type transactionSQLite struct {
	ID          uint64          `gorm:"primaryKey;column:id;autoIncrement"`
	TxID        string          `gorm:"size:32;uniqueIndex;column:tx_id"`
	UserID      string          `gorm:"size:32;column:user_id"`
	Type        string          `gorm:"size:16;column:type"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);column:amount"`
	Status      string          `gorm:"size:16;column:status"`
	ReferenceID string          `gorm:"size:64;column:reference_id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (transactionSQLite) TableName() string { return "transactions" }

type investmentSQLite struct {
	ID           uint64          `gorm:"primaryKey;column:id;autoIncrement"`
	InvestmentID string          `gorm:"size:32;uniqueIndex;column:investment_id"`
	InvestorID   string          `gorm:"size:32;column:investor_id"`
	DealID       string          `gorm:"size:32;column:deal_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);column:amount"`
	Status       string          `gorm:"size:16;column:status"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (investmentSQLite) TableName() string { return "investments" }

// Open returns an in-memory sqlite DB with the full mirrored schema migrated.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe models, NOT the domain models.
	if err := db.AutoMigrate(
		&userSQLite{},
		&walletSQLite{},
		&dealSQLite{},
		&pendingSQLite{},
		&transactionSQLite{},
		&investmentSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
