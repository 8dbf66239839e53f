package decision

import (
	"time"

	"github.com/shopspring/decimal"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type DecideInput struct {
	PendingID string
	Decision  Decision
}

type DecisionDTO struct {
	PendingID string          `json:"pending_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	DecidedAt time.Time       `json:"decided_at"`
}
