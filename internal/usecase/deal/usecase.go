package deal

import (
	"context"
	"errors"
	"time"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/domain/deal"
	domainUser "brickvest-backend/internal/domain/user"
	"brickvest-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ repo deal.Repository }

func NewUsecase(r deal.Repository) *Usecase { return &Usecase{repo: r} }

type CreateDealInput struct {
	Title            string
	Description      string
	LoanAmount       decimal.Decimal
	InterestRate     decimal.Decimal
	TermMonths       int
	LTV              decimal.Decimal
	PropertyType     string
	PropertyLocation string
}

type DealDTO struct {
	DealID           string          `json:"deal_id"`
	LenderID         string          `json:"lender_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	LoanAmount       decimal.Decimal `json:"loan_amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TermMonths       int             `json:"term_months"`
	LTV              decimal.Decimal `json:"ltv"`
	PropertyType     string          `json:"property_type"`
	PropertyLocation string          `json:"property_location"`
	Status           string          `json:"status"`
	Payoff           decimal.Decimal `json:"payoff"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Create submits a new deal for admin review (status=submitted).
func (u *Usecase) Create(ctx context.Context, p auth.Principal, in CreateDealInput) (*DealDTO, error) {
	if err := auth.RequireRole(p, domainUser.RoleLender); err != nil {
		return nil, err
	}
	if in.Title == "" || !in.LoanAmount.IsPositive() || in.TermMonths <= 0 {
		return nil, errors.New("invalid input")
	}
	if in.InterestRate.IsNegative() || in.LTV.IsNegative() {
		return nil, errors.New("invalid input")
	}

	d := &deal.Deal{
		DealID:           id.NewID32(),
		LenderID:         p.UserID,
		Title:            in.Title,
		Description:      in.Description,
		LoanAmount:       in.LoanAmount.Round(2),
		InterestRate:     in.InterestRate,
		TermMonths:       in.TermMonths,
		LTV:              in.LTV,
		PropertyType:     in.PropertyType,
		PropertyLocation: in.PropertyLocation,
		Status:           deal.StatusSubmitted,
		StatusUpdatedAt:  time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Decide moves a submitted deal to approved or rejected. Any other starting
// state is an invalid transition; deciding twice is caught by the row lock
// plus state guard.
func (u *Usecase) Decide(ctx context.Context, p auth.Principal, dealID string, decision Decision) (*DealDTO, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}

	var dto *DealDTO
	err := u.repo.Tx(ctx, func(r deal.Repository) error {
		d, err := r.GetByDealIDForUpdate(ctx, dealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return deal.ErrNotFound
			}
			return err
		}
		if d.Status != deal.StatusSubmitted {
			return deal.ErrInvalidTransition
		}

		switch decision {
		case DecisionApprove:
			d.Status = deal.StatusApproved
		case DecisionReject:
			d.Status = deal.StatusRejected
		default:
			return deal.ErrInvalidTransition
		}
		d.StatusUpdatedAt = time.Now().UTC()
		if err := r.Save(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, dealID string) (*DealDTO, error) {
	d, err := u.repo.GetByDealID(ctx, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deal.ErrNotFound
		}
		return nil, err
	}
	return toDTO(d), nil
}

// ListOpen returns deals investors can browse: approved and (still visible)
// funded ones.
func (u *Usecase) ListOpen(ctx context.Context) ([]DealDTO, error) {
	rows, err := u.repo.ListByStatus(ctx, deal.StatusApproved, deal.StatusFunded)
	if err != nil {
		return nil, err
	}
	out := make([]DealDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func (u *Usecase) ListMine(ctx context.Context, p auth.Principal) ([]DealDTO, error) {
	rows, err := u.repo.ListByLenderID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]DealDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(d *deal.Deal) *DealDTO {
	return &DealDTO{
		DealID:           d.DealID,
		LenderID:         d.LenderID,
		Title:            d.Title,
		Description:      d.Description,
		LoanAmount:       d.LoanAmount,
		InterestRate:     d.InterestRate,
		TermMonths:       d.TermMonths,
		LTV:              d.LTV,
		PropertyType:     d.PropertyType,
		PropertyLocation: d.PropertyLocation,
		Status:           string(d.Status),
		Payoff:           d.Payoff(),
		CreatedAt:        d.CreatedAt,
	}
}
