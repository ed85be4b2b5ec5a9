package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRole string

const (
	AccountRoleUser  AccountRole = "USER"
	AccountRoleAdmin AccountRole = "ADMIN"
)

type Account struct {
	ConnectID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"connect_id"`
	Email         string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username      string         `gorm:"type:varchar(100)" json:"username"`
	FullName      *string        `gorm:"type:varchar(255)" json:"full_name,omitempty"`
	Phone         *string        `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Birthday      *time.Time     `json:"birthday,omitempty"`
	Role          AccountRole    `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Points        int64          `gorm:"not null;default:0" json:"points"`
	EmailVerified bool           `gorm:"not null;default:false" json:"email_verified"`
	OTP           *string        `gorm:"type:varchar(6)" json:"-"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

type AccountUpdateRequest struct {
	Username *string    `json:"username,omitempty" validate:"omitempty,max=100"`
	FullName *string    `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Phone    *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}
