package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeCodeRedemption TransactionType = "CODE_REDEMPTION"
	TransactionTypeAdminCredit    TransactionType = "ADMIN_CREDIT"
	TransactionTypePurchase       TransactionType = "PURCHASE"
)

// Transaction is an immutable record of a single point-affecting event.
// PointsDelta is signed: positive for credits, negative for purchases.
type Transaction struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"account_id"`
	Type        TransactionType  `gorm:"type:varchar(20);not null" json:"type"`
	PointsDelta int64            `gorm:"not null" json:"points_delta"`
	Description *string          `gorm:"type:text" json:"description,omitempty"`
	CodeID      *uuid.UUID       `gorm:"type:uuid;index" json:"code_id,omitempty"`
	ProductID   *string          `gorm:"type:varchar(50)" json:"product_id,omitempty"`
	Price       *decimal.Decimal `gorm:"type:decimal(18,2)" json:"price,omitempty"`
	CreatedBy   *uuid.UUID       `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type AdminCreditRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Points int64  `json:"points" validate:"required,gt=0"`
}

type AdminCreditResponse struct {
	Transaction *Transaction `json:"transaction"`
	NewBalance  int64        `json:"new_balance"`
}

type PurchaseRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
	ProductID string `json:"product_id" validate:"required,max=50"`
	Volume    string `json:"volume" validate:"required,numeric"`
}

type PurchaseResponse struct {
	Transaction *Transaction    `json:"transaction"`
	TotalPoints int64           `json:"total_points"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	NewBalance  int64           `json:"new_balance"`
}
