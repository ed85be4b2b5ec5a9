package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"github.com/stasiunku/loyalty-core/pkg/apikey"
	"gorm.io/gorm"
)

var (
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrAPIKeyExpired = errors.New("API key expired")
	ErrInvalidScope  = errors.New("invalid scope")
)

// TerminalAPIKeyService manages the API keys handed to point-of-sale
// stations.
type TerminalAPIKeyService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewTerminalAPIKeyService(db *gorm.DB, validator *infrastructures.Validator) *TerminalAPIKeyService {
	return &TerminalAPIKeyService{db: db, validator: validator}
}

// CreateAPIKey creates a new key for a terminal.
func (s *TerminalAPIKeyService) CreateAPIKey(ctx context.Context, req *models.TerminalAPIKeyCreateRequest) (*models.TerminalAPIKey, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	for _, scope := range req.Scopes {
		if !apikey.ValidateScope(scope) {
			return nil, ErrInvalidScope
		}
	}

	const prefix = "pos"
	key, err := apikey.GenerateAPIKey(prefix)
	if err != nil {
		return nil, err
	}

	record := &models.TerminalAPIKey{
		Name:      req.Name,
		APIKey:    key,
		Prefix:    prefix,
		Scopes:    req.Scopes,
		ExpiresAt: req.ExpiresAt,
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, appErrors.NewInternalServerError(err, "Failed to create terminal API key")
	}

	return record, nil
}

// GetAPIKey gets a key by its value.
func (s *TerminalAPIKeyService) GetAPIKey(ctx context.Context, key string) (*models.TerminalAPIKey, error) {
	var record models.TerminalAPIKey
	if err := s.db.WithContext(ctx).Where("api_key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAPIKey
		}
		return nil, err
	}

	if !record.IsActive() {
		return nil, ErrAPIKeyExpired
	}

	return &record, nil
}

// LogAPIKeyUsage logs one request made with a key and bumps last_used_at.
func (s *TerminalAPIKeyService) LogAPIKeyUsage(ctx context.Context, usage *models.TerminalAPIKeyUsage) error {
	if err := s.db.WithContext(ctx).Create(usage).Error; err != nil {
		return err
	}

	now := time.Now()
	return s.db.WithContext(ctx).
		Model(&models.TerminalAPIKey{}).
		Where("id = ?", usage.APIKeyID).
		Update("last_used_at", now).Error
}

// ListAPIKeys lists all terminal keys.
func (s *TerminalAPIKeyService) ListAPIKeys(ctx context.Context) ([]models.TerminalAPIKey, error) {
	var keys []models.TerminalAPIKey
	if err := s.db.WithContext(ctx).Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// RevokeAPIKey revokes a key.
func (s *TerminalAPIKeyService) RevokeAPIKey(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	result := s.db.WithContext(ctx).
		Model(&models.TerminalAPIKey{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvalidAPIKey
	}
	return nil
}
