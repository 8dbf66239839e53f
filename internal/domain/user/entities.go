package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleInvestor Role = "investor"
	RoleLender   Role = "lender"
	RoleAdmin    Role = "admin"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID                 uint64             `gorm:"primaryKey;column:id" json:"-"`
	UserID             string             `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Email              string             `gorm:"size:255;uniqueIndex:ux_users_email_active" json:"email"`
	FullName           string             `gorm:"size:255" json:"full_name"`
	Role               Role               `gorm:"type:enum('investor','lender','admin')" json:"role"`
	VerificationStatus VerificationStatus `gorm:"type:enum('pending','verified','rejected');default:'pending'" json:"verification_status"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
