package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Code is a single-use redemption code. Its ID is the payload encoded in the
// QR image handed to the customer; it transitions used=false -> true exactly
// once, by the first successful redemption. Codes are never deleted.
type Code struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Points    int64      `gorm:"not null" json:"points"`
	Used      bool       `gorm:"not null;default:false" json:"used"`
	UsedBy    *uuid.UUID `gorm:"type:uuid" json:"used_by,omitempty"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Code) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CodeCreateRequest struct {
	Points int64 `json:"points" validate:"required,gt=0"`
}

// CodeFilter narrows the admin code history listing.
type CodeFilter struct {
	Used *bool
	From *time.Time
	To   *time.Time
}
