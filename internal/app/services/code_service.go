package services

import (
	"github.com/google/uuid"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"gorm.io/gorm"
)

type CodeService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewCodeService(db *gorm.DB, validator *infrastructures.Validator) *CodeService {
	return &CodeService{
		db:        db,
		validator: validator,
	}
}

// CreateCode mints a single-use redemption code. The returned ID is the
// payload to encode into the QR image.
func (s *CodeService) CreateCode(req *models.CodeCreateRequest, createdBy *uuid.UUID) (*models.Code, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	code := &models.Code{
		Points:    req.Points,
		Used:      false,
		CreatedBy: createdBy,
	}

	if err := s.db.Create(code).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create code")
	}

	return code, nil
}

func (s *CodeService) GetCode(codeId string) (*models.Code, error) {
	codeUUID, err := uuid.Parse(codeId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid code ID format")
	}

	var code models.Code
	err = s.db.Where("id = ?", codeUUID).First(&code).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Code not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get code")
	}

	return &code, nil
}

// GetCodes lists codes for the admin history screen, newest first, filtered
// by used state and creation date range.
func (s *CodeService) GetCodes(pagination *models.PaginationRequest, filter *models.CodeFilter) (*models.Pagination[[]models.Code], error) {
	// Set defaults
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	buildQuery := func(q *gorm.DB) *gorm.DB {
		if filter != nil {
			if filter.Used != nil {
				q = q.Where("used = ?", *filter.Used)
			}
			if filter.From != nil {
				q = q.Where("created_at >= ?", *filter.From)
			}
			if filter.To != nil {
				q = q.Where("created_at <= ?", pkg.EndOfDay(*filter.To))
			}
		}
		return q
	}

	// Count total items
	var totalItems int64
	if err := buildQuery(s.db.Model(&models.Code{})).Count(&totalItems).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count codes")
	}

	var codes []models.Code
	query := buildQuery(s.db.Order("created_at DESC")).Limit(pagination.Limit)
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&codes).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get codes")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	result := &models.Pagination[[]models.Code]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      codes,
	}

	return result, nil
}
