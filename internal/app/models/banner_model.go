package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner is a promotion shown on the home screen. The image lives in blob
// storage; ImagePath is the storage object path, ImageURL the public URL.
type Banner struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string         `gorm:"type:text;not null" json:"image_url"`
	ImagePath   string         `gorm:"type:text;not null" json:"-"`
	CreatedBy   *uuid.UUID     `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type BannerCreateRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	// Image is the raw file content, base64 encoded by the client.
	Image    string `json:"image" validate:"required"`
	Filename string `json:"filename" validate:"required,max=255"`
}
