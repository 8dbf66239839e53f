package user

import (
	"context"
	"errors"
	"time"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct{ repo user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{repo: r} }

type UserDTO struct {
	UserID             string    `json:"user_id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Role               string    `json:"role"`
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}

func (u *Usecase) Get(ctx context.Context, userID string) (*UserDTO, error) {
	row, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return toDTO(row), nil
}

// Verify marks an onboarded user as verified. Admin only.
func (u *Usecase) Verify(ctx context.Context, p auth.Principal, userID string) (*UserDTO, error) {
	return u.setVerification(ctx, p, userID, user.VerificationVerified)
}

// Reject marks an onboarded user as rejected. Admin only.
func (u *Usecase) Reject(ctx context.Context, p auth.Principal, userID string) (*UserDTO, error) {
	return u.setVerification(ctx, p, userID, user.VerificationRejected)
}

func (u *Usecase) setVerification(ctx context.Context, p auth.Principal, userID string, status user.VerificationStatus) (*UserDTO, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	row, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	row.VerificationStatus = status
	if err := u.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	return toDTO(row), nil
}

func toDTO(row *user.User) *UserDTO {
	return &UserDTO{
		UserID:             row.UserID,
		Email:              row.Email,
		FullName:           row.FullName,
		Role:               string(row.Role),
		VerificationStatus: string(row.VerificationStatus),
		CreatedAt:          row.CreatedAt,
	}
}
