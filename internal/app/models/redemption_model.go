package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Redemption links a consumed code to the account it credited and the
// transaction it produced. The unique index on CodeID is the schema-level
// guarantee that at most one transaction ever references a code.
type Redemption struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CodeID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"code_id"`
	AccountID     uuid.UUID `gorm:"type:uuid;index;not null" json:"account_id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null" json:"transaction_id"`
	RedeemedAt    time.Time `gorm:"autoCreateTime" json:"redeemed_at"`
}

func (r *Redemption) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type RedeemRequest struct {
	CodeID string `json:"code_id" validate:"required,uuid"`
}

// RedeemResult is what the scanning client displays after a successful
// redemption. NewBalance is authoritative for the session; clients update
// their local display from it instead of re-reading the account.
type RedeemResult struct {
	Redemption    *Redemption  `json:"redemption"`
	Transaction   *Transaction `json:"transaction"`
	PointsAwarded int64        `json:"points_awarded"`
	NewBalance    int64        `json:"new_balance"`
}
