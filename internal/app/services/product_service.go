package services

import (
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewProductService(db *gorm.DB, validator *infrastructures.Validator) *ProductService {
	return &ProductService{
		db:        db,
		validator: validator,
	}
}

func (s *ProductService) GetProduct(productId string) (*models.Product, error) {
	var product models.Product
	err := s.db.Where("id = ?", productId).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Product not found [" + ErrCodeProductNotFound + "]")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get product")
	}

	return &product, nil
}

func (s *ProductService) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get products")
	}

	return products, nil
}

// SetPrices upserts the whole price table in one batch, mirroring how the
// admin screen submits it.
func (s *ProductService) SetPrices(req *models.ProductPricesUpdateRequest) ([]models.Product, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(req.Prices))
	for _, entry := range req.Prices {
		if entry.PricePerUnit.IsNegative() {
			return nil, errors.NewBadRequestError("Price per unit must not be negative")
		}
		products = append(products, models.Product{
			ID:            entry.ProductID,
			Name:          entry.Name,
			PointsPerUnit: entry.PointsPerUnit,
			PricePerUnit:  entry.PricePerUnit,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "points_per_unit", "price_per_unit", "updated_at"}),
		}).Create(&products).Error
	})
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update product prices")
	}

	return products, nil
}
