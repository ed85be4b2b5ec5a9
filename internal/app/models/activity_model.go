package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is one entry of the per-account history shown on the home screen.
// Append-only; ordered by CreatedAt for display.
type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	ReferenceID uuid.UUID `gorm:"type:uuid;not null" json:"reference_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PointsDelta int64     `gorm:"not null" json:"points_delta"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
