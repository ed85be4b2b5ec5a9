package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/stasiunku/loyalty-core/pkg/apikey"
	"gorm.io/gorm"
)

// TerminalAPIKey authenticates a point-of-sale station. Keys are scoped so a
// pump terminal can debit purchases without being able to mint credits.
type TerminalAPIKey struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(100);not null" json:"name"`
	APIKey     string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"api_key"`
	Prefix     string         `gorm:"type:varchar(10);not null" json:"prefix"`
	Scopes     []apikey.Scope `gorm:"serializer:json" json:"scopes"`
	LastUsedAt *time.Time     `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time     `json:"expires_at,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  *time.Time     `gorm:"index" json:"deleted_at,omitempty"`
}

func (k *TerminalAPIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// IsExpired checks if the key is past its expiry.
func (k *TerminalAPIKey) IsExpired() bool {
	if k.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*k.ExpiresAt)
}

// IsActive checks if the key is not revoked and not expired.
func (k *TerminalAPIKey) IsActive() bool {
	return k.DeletedAt == nil && !k.IsExpired()
}

// HasScope checks if the key carries a specific scope.
func (k *TerminalAPIKey) HasScope(scope apikey.Scope) bool {
	for _, s := range k.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// TerminalAPIKeyUsage records one request made with a terminal key.
type TerminalAPIKeyUsage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	APIKeyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"api_key_id"`
	Endpoint   string    `gorm:"type:varchar(255);not null" json:"endpoint"`
	Method     string    `gorm:"type:varchar(10);not null" json:"method"`
	IPAddress  string    `gorm:"type:varchar(45)" json:"ip_address"`
	StatusCode int       `json:"status_code"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *TerminalAPIKeyUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type TerminalAPIKeyCreateRequest struct {
	Name      string         `json:"name" validate:"required,max=100"`
	Scopes    []apikey.Scope `json:"scopes" validate:"required,min=1"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
}
