package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one entry of the admin-managed price table used by the
// point-of-sale flow. Volume is sold in liters; both the point cost and the
// currency price are per unit.
type Product struct {
	ID            string          `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	PointsPerUnit int64           `gorm:"not null" json:"points_per_unit"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"price_per_unit"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type ProductPriceEntry struct {
	ProductID     string          `json:"product_id" validate:"required,max=50"`
	Name          string          `json:"name" validate:"required,max=255"`
	PointsPerUnit int64           `json:"points_per_unit" validate:"required,gt=0"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit" validate:"required"`
}

type ProductPricesUpdateRequest struct {
	Prices []ProductPriceEntry `json:"prices" validate:"required,min=1,dive"`
}
