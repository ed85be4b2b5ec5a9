package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"gorm.io/gorm"
)

// Error codes for better client error handling
const (
	ErrCodeInsufficientPoints  = "INSUFFICIENT_POINTS"
	ErrCodeInvalidVolume       = "INVALID_VOLUME"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
)

type TransactionService struct {
	db             *gorm.DB
	validator      *infrastructures.Validator
	accountService *AccountService
	productService *ProductService
	auditService   *AuditService
}

func NewTransactionService(db *gorm.DB, validator *infrastructures.Validator, accountService *AccountService, productService *ProductService, auditService *AuditService) *TransactionService {
	return &TransactionService{
		db:             db,
		validator:      validator,
		accountService: accountService,
		productService: productService,
		auditService:   auditService,
	}
}

// CreditByEmail applies an out-of-band point adjustment to the account with
// the given email. Always a relative increment; two concurrent credits both
// land instead of one overwriting the other.
func (s *TransactionService) CreditByEmail(req *models.AdminCreditRequest, creditedBy *uuid.UUID) (*models.AdminCreditResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.accountService.GetAccountByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	var response *models.AdminCreditResponse

	err = s.db.Transaction(func(tx *gorm.DB) error {
		description := "Manual point credit"
		transaction := &models.Transaction{
			AccountID:   account.ConnectID,
			Type:        models.TransactionTypeAdminCredit,
			PointsDelta: req.Points,
			Description: &description,
			CreatedBy:   creditedBy,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to create credit transaction")
		}

		if err := tx.Model(&models.Account{}).
			Where("connect_id = ?", account.ConnectID).
			UpdateColumn("points", gorm.Expr("points + ?", req.Points)).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to update account points")
		}

		activity := &models.Activity{
			AccountID:   account.ConnectID,
			ReferenceID: transaction.ID,
			Description: description,
			PointsDelta: req.Points,
		}
		if err := tx.Create(activity).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to append activity")
		}

		var updated models.Account
		if err := tx.Where("connect_id = ?", account.ConnectID).First(&updated).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to read updated balance")
		}

		response = &models.AdminCreditResponse{
			Transaction: transaction,
			NewBalance:  updated.Points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditService.LogAudit("transactions", response.Transaction.ID, models.AuditActionCreate, nil, response.Transaction, creditedBy)

	return response, nil
}

// Purchase debits points for a volume of product sold at the point of sale.
// The debit is conditional on a sufficient balance, so the balance can never
// go negative even under concurrent purchases.
func (s *TransactionService) Purchase(req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	accountUUID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid account ID format")
	}

	volume, err := decimal.NewFromString(req.Volume)
	if err != nil || !volume.IsPositive() {
		return nil, errors.NewBadRequestError("Volume must be a positive number [" + ErrCodeInvalidVolume + "]")
	}

	account, err := s.accountService.GetAccount(accountUUID.String())
	if err != nil {
		return nil, err
	}

	if !account.EmailVerified {
		return nil, errors.NewForbiddenError("Account email is not verified [" + ErrCodeUnverified + "]")
	}

	product, err := s.productService.GetProduct(req.ProductID)
	if err != nil {
		return nil, err
	}

	totalPoints := decimal.NewFromInt(product.PointsPerUnit).Mul(volume).Round(0).IntPart()
	totalPrice := product.PricePerUnit.Mul(volume).Round(2)

	if totalPoints > account.Points {
		return nil, errors.NewBadRequestError("Insufficient points [" + ErrCodeInsufficientPoints + "]")
	}

	var response *models.PurchaseResponse

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Conditional debit; a concurrent purchase that drained the balance
		// first shows up as zero affected rows.
		debit := tx.Model(&models.Account{}).
			Where("connect_id = ? AND points >= ?", account.ConnectID, totalPoints).
			UpdateColumn("points", gorm.Expr("points - ?", totalPoints))
		if debit.Error != nil {
			return errors.NewInternalServerError(debit.Error, "Failed to update account points")
		}
		if debit.RowsAffected == 0 {
			return errors.NewBadRequestError("Insufficient points [" + ErrCodeInsufficientPoints + "]")
		}

		description := fmt.Sprintf("Purchased %s liters of %s", volume.String(), product.Name)
		transaction := &models.Transaction{
			AccountID:   account.ConnectID,
			Type:        models.TransactionTypePurchase,
			PointsDelta: -totalPoints,
			Description: &description,
			ProductID:   &product.ID,
			Price:       &totalPrice,
		}
		if err := tx.Create(transaction).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to create purchase transaction")
		}

		activity := &models.Activity{
			AccountID:   account.ConnectID,
			ReferenceID: transaction.ID,
			Description: description,
			PointsDelta: -totalPoints,
		}
		if err := tx.Create(activity).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to append activity")
		}

		var updated models.Account
		if err := tx.Where("connect_id = ?", account.ConnectID).First(&updated).Error; err != nil {
			return errors.NewInternalServerError(err, "Failed to read updated balance")
		}

		response = &models.PurchaseResponse{
			Transaction: transaction,
			TotalPoints: totalPoints,
			TotalPrice:  totalPrice,
			NewBalance:  updated.Points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditService.LogAudit("transactions", response.Transaction.ID, models.AuditActionCreate, nil, response.Transaction, nil)

	return response, nil
}

func (s *TransactionService) GetTransaction(transactionId string) (*models.Transaction, error) {
	transactionUUID, err := uuid.Parse(transactionId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid transaction ID format")
	}

	var transaction models.Transaction
	err = s.db.Where("id = ?", transactionUUID).First(&transaction).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Transaction not found [" + ErrCodeTransactionNotFound + "]")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get transaction")
	}

	return &transaction, nil
}

func (s *TransactionService) GetTransactionsByAccount(accountId string, pagination *models.PaginationRequest) (*models.Pagination[[]models.Transaction], error) {
	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid account ID format")
	}

	// Set defaults
	if pagination.Limit <= 0 {
		pagination.Limit = 10
	}
	if pagination.Page <= 0 {
		pagination.Page = 1
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var totalItems int64
	if err := s.db.Model(&models.Transaction{}).Where("account_id = ?", accountUUID).Count(&totalItems).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to count transactions")
	}

	var transactions []models.Transaction
	query := s.db.Where("account_id = ?", accountUUID).Order("created_at DESC").Limit(pagination.Limit)
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&transactions).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get transactions")
	}

	totalPages := int((totalItems + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	result := &models.Pagination[[]models.Transaction]{
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		TotalItems: int(totalItems),
		HasNext:    pagination.Page < totalPages,
		HasPrev:    pagination.Page > 1,
		Items:      transactions,
	}

	return result, nil
}

// GetTransactionsByCode returns every transaction referencing a code. Under
// the single-use invariant the result never holds more than one row.
func (s *TransactionService) GetTransactionsByCode(codeId string) ([]models.Transaction, error) {
	codeUUID, err := uuid.Parse(codeId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid code ID format")
	}

	var transactions []models.Transaction
	err = s.db.Where("code_id = ?", codeUUID).Order("created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get transactions")
	}

	return transactions, nil
}
