package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"gorm.io/gorm"
)

// Error codes for better client error handling
const (
	ErrCodeInvalidCode     = "INVALID_CODE"
	ErrCodeAlreadyUsed     = "CODE_ALREADY_USED"
	ErrCodeUnverified      = "ACCOUNT_NOT_VERIFIED"
	ErrCodeAccountNotFound = "ACCOUNT_NOT_FOUND"
)

type RedemptionService struct {
	db             *gorm.DB
	validator      *infrastructures.Validator
	codeService    *CodeService
	accountService *AccountService
	auditService   *AuditService
}

func NewRedemptionService(db *gorm.DB, validator *infrastructures.Validator, codeService *CodeService, accountService *AccountService, auditService *AuditService) *RedemptionService {
	return &RedemptionService{
		db:             db,
		validator:      validator,
		codeService:    codeService,
		accountService: accountService,
		auditService:   auditService,
	}
}

// Redeem converts a scanned code into a point credit, exactly once.
//
// The code ID comes off a physical QR image and is untrusted: it may be
// malformed, unknown, or already consumed. The whole sequence runs in one
// database transaction; the used flag is flipped with a conditional update
// (rows-affected check) so two concurrent scans of the same code cannot both
// pass, and the unique index on redemptions.code_id backstops the flag.
func (s *RedemptionService) Redeem(accountId string, req *models.RedeemRequest) (*models.RedeemResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	codeUUID, err := uuid.Parse(req.CodeID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid code [" + ErrCodeInvalidCode + "]")
	}

	account, err := s.accountService.GetAccount(accountId)
	if err != nil {
		return nil, err
	}

	if !account.EmailVerified {
		return nil, errors.NewForbiddenError("Account email is not verified [" + ErrCodeUnverified + "]")
	}

	var result *models.RedeemResult
	now := time.Now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Claim the code. The conditional update only wins if used is still
		// false; a lost race surfaces as zero affected rows.
		claim := tx.Model(&models.Code{}).
			Where("id = ? AND used = ?", codeUUID, false).
			Updates(map[string]interface{}{
				"used":    true,
				"used_by": account.ConnectID,
				"used_at": now,
			})
		if claim.Error != nil {
			return errors.NewInternalServerError(claim.Error, "Failed to claim code")
		}
		if claim.RowsAffected == 0 {
			var existing models.Code
			if err := tx.Where("id = ?", codeUUID).First(&existing).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.NewNotFoundError("Code not found [" + ErrCodeInvalidCode + "]")
				}
				return errors.NewInternalServerError(err, "Failed to get code")
			}
			return errors.NewBadRequestError("Code has already been used [" + ErrCodeAlreadyUsed + "]")
		}

		var code models.Code
		if err := tx.Where("id = ?", codeUUID).First(&code).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to get code")
		}

		description := "QR code redemption"
		transaction := &models.Transaction{
			AccountID:   account.ConnectID,
			Type:        models.TransactionTypeCodeRedemption,
			PointsDelta: code.Points,
			Description: &description,
			CodeID:      &code.ID,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to create redemption transaction")
		}

		// Secondary guard: the unique index on code_id rejects a double
		// credit even if the used flag were ever reset by hand.
		redemption := &models.Redemption{
			CodeID:        code.ID,
			AccountID:     account.ConnectID,
			TransactionID: transaction.ID,
		}
		if err := tx.Create(redemption).Error; err != nil {
			return errors.NewBadRequestError("Code has already been used [" + ErrCodeAlreadyUsed + "]")
		}

		if err := tx.Model(&models.Account{}).
			Where("connect_id = ?", account.ConnectID).
			UpdateColumn("points", gorm.Expr("points + ?", code.Points)).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to update account points")
		}

		activity := &models.Activity{
			AccountID:   account.ConnectID,
			ReferenceID: transaction.ID,
			Description: description,
			PointsDelta: code.Points,
		}
		if err := tx.Create(activity).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to append activity")
		}

		var updated models.Account
		if err := tx.Where("connect_id = ?", account.ConnectID).First(&updated).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to read updated balance")
		}

		result = &models.RedeemResult{
			Redemption:    redemption,
			Transaction:   transaction,
			PointsAwarded: code.Points,
			NewBalance:    updated.Points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditService.LogAudit("transactions", result.Transaction.ID, models.AuditActionCreate, nil, result.Transaction, &account.ConnectID)

	return result, nil
}

func (s *RedemptionService) GetRedemption(redemptionId string) (*models.Redemption, error) {
	redemptionUUID, err := uuid.Parse(redemptionId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid redemption ID format")
	}

	var redemption models.Redemption
	err = s.db.Where("id = ?", redemptionUUID).First(&redemption).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Redemption not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get redemption")
	}

	return &redemption, nil
}

func (s *RedemptionService) GetRedemptionsByAccount(accountId string, limit, offset int) ([]models.Redemption, error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid account ID format")
	}

	var redemptions []models.Redemption
	query := s.db.Where("account_id = ?", accountUUID).Order("redeemed_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err = query.Find(&redemptions).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get redemptions")
	}

	return redemptions, nil
}
