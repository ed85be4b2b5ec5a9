package services

import (
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"gorm.io/gorm"
)

type BannerService struct {
	db            *gorm.DB
	validator     *infrastructures.Validator
	storageClient *infrastructures.StorageClient
}

func NewBannerService(db *gorm.DB, validator *infrastructures.Validator, storageClient *infrastructures.StorageClient) *BannerService {
	return &BannerService{
		db:            db,
		validator:     validator,
		storageClient: storageClient,
	}
}

// CreateBanner uploads the image to blob storage and records the banner.
// If the database write fails the uploaded object is removed again.
func (s *BannerService) CreateBanner(req *models.BannerCreateRequest, createdBy *uuid.UUID) (*models.Banner, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	content, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return nil, errors.NewBadRequestError("Image must be base64 encoded")
	}

	contentType := mime.TypeByExtension(filepath.Ext(req.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectPath := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), req.Filename)
	path, publicURL, err := s.storageClient.Upload(objectPath, content, contentType)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to upload banner image")
	}

	banner := &models.Banner{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    publicURL,
		ImagePath:   path,
		CreatedBy:   createdBy,
	}

	if err := s.db.Create(banner).Error; err != nil {
		if delErr := s.storageClient.Delete(path); delErr != nil {
			return nil, errors.NewInternalServerError(delErr, "Failed to create banner")
		}
		return nil, errors.NewInternalServerError(err, "Failed to create banner")
	}

	return banner, nil
}

func (s *BannerService) GetBanner(bannerId string) (*models.Banner, error) {
	bannerUUID, err := uuid.Parse(bannerId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid banner ID format")
	}

	var banner models.Banner
	err = s.db.Where("id = ?", bannerUUID).First(&banner).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Banner not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get banner")
	}

	return &banner, nil
}

func (s *BannerService) GetBanners() ([]models.Banner, error) {
	var banners []models.Banner
	if err := s.db.Order("created_at DESC").Find(&banners).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get banners")
	}

	return banners, nil
}

// DeleteBanner removes the banner record and its stored image.
func (s *BannerService) DeleteBanner(bannerId string) error {
	banner, err := s.GetBanner(bannerId)
	if err != nil {
		return err
	}

	if err := s.db.Delete(banner).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete banner")
	}

	if err := s.storageClient.Delete(banner.ImagePath); err != nil {
		return errors.NewInternalServerError(err, "Failed to delete banner image")
	}

	return nil
}
