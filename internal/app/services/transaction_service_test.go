package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditByEmail_Success(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 40, true)
	admin := createTestAccount(t, db, 0, true)

	response, err := service.CreditByEmail(&models.AdminCreditRequest{
		Email:  account.Email,
		Points: 60,
	}, &admin.ConnectID)
	require.NoError(t, err)

	assert.Equal(t, int64(100), response.NewBalance)
	assert.Equal(t, models.TransactionTypeAdminCredit, response.Transaction.Type)
	assert.Equal(t, int64(60), response.Transaction.PointsDelta)
	require.NotNil(t, response.Transaction.CreatedBy)
	assert.Equal(t, admin.ConnectID, *response.Transaction.CreatedBy)

	var updated models.Account
	require.NoError(t, db.First(&updated, "connect_id = ?", account.ConnectID).Error)
	assert.Equal(t, int64(100), updated.Points)
}

func TestCreditByEmail_IsRelativeIncrement(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 10, true)

	// Two credits both land; neither overwrites the other.
	_, err := service.CreditByEmail(&models.AdminCreditRequest{Email: account.Email, Points: 5}, nil)
	require.NoError(t, err)
	response, err := service.CreditByEmail(&models.AdminCreditRequest{Email: account.Email, Points: 7}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(22), response.NewBalance)
}

func TestCreditByEmail_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	_, err := service.CreditByEmail(&models.AdminCreditRequest{
		Email:  "nobody@example.com",
		Points: 10,
	}, nil)
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestCreditByEmail_RejectsNonPositivePoints(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 10, true)

	_, err := service.CreditByEmail(&models.AdminCreditRequest{Email: account.Email, Points: 0}, nil)
	require.Error(t, err)

	_, err = service.CreditByEmail(&models.AdminCreditRequest{Email: account.Email, Points: -5}, nil)
	require.Error(t, err)

	var updated models.Account
	require.NoError(t, db.First(&updated, "connect_id = ?", account.ConnectID).Error)
	assert.Equal(t, int64(10), updated.Points)
}

func TestPurchase_Success(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 500, true)
	createTestProduct(t, db, "pertamax", 10, "13500.00")

	response, err := service.Purchase(&models.PurchaseRequest{
		AccountID: account.ConnectID.String(),
		ProductID: "pertamax",
		Volume:    "20.5",
	})
	require.NoError(t, err)

	// 10 points/liter * 20.5 liters = 205 points
	assert.Equal(t, int64(205), response.TotalPoints)
	assert.True(t, response.TotalPrice.Equal(decimal.RequireFromString("276750")))
	assert.Equal(t, int64(295), response.NewBalance)
	assert.Equal(t, models.TransactionTypePurchase, response.Transaction.Type)
	assert.Equal(t, int64(-205), response.Transaction.PointsDelta)

	var updated models.Account
	require.NoError(t, db.First(&updated, "connect_id = ?", account.ConnectID).Error)
	assert.Equal(t, int64(295), updated.Points)

	var activities []models.Activity
	require.NoError(t, db.Where("account_id = ?", account.ConnectID).Find(&activities).Error)
	require.Len(t, activities, 1)
	assert.Equal(t, int64(-205), activities[0].PointsDelta)
}

func TestPurchase_InsufficientPoints(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 100, true)
	createTestProduct(t, db, "pertamax", 10, "13500.00")

	_, err := service.Purchase(&models.PurchaseRequest{
		AccountID: account.ConnectID.String(),
		ProductID: "pertamax",
		Volume:    "20",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Contains(t, appErr.Message, ErrCodeInsufficientPoints)

	// Balance untouched on failure.
	var updated models.Account
	require.NoError(t, db.First(&updated, "connect_id = ?", account.ConnectID).Error)
	assert.Equal(t, int64(100), updated.Points)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPurchase_RejectsNonPositiveVolume(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 100, true)
	createTestProduct(t, db, "pertalite", 5, "10000.00")

	for _, volume := range []string{"0", "-3"} {
		_, err := service.Purchase(&models.PurchaseRequest{
			AccountID: account.ConnectID.String(),
			ProductID: "pertalite",
			Volume:    volume,
		})
		require.Error(t, err, "volume %s must be rejected", volume)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	}
}

func TestPurchase_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 100, true)

	_, err := service.Purchase(&models.PurchaseRequest{
		AccountID: account.ConnectID.String(),
		ProductID: "diesel",
		Volume:    "5",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Contains(t, appErr.Message, ErrCodeProductNotFound)
}

func TestPurchase_UnverifiedAccount(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 100, false)
	createTestProduct(t, db, "pertamax", 10, "13500.00")

	_, err := service.Purchase(&models.PurchaseRequest{
		AccountID: account.ConnectID.String(),
		ProductID: "pertamax",
		Volume:    "1",
	})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.StatusCode)
}

func TestGetTransactionsByAccount_Pagination(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 0, true)

	for i := 0; i < 5; i++ {
		_, err := service.CreditByEmail(&models.AdminCreditRequest{Email: account.Email, Points: 1}, nil)
		require.NoError(t, err)
	}

	page, err := service.GetTransactionsByAccount(account.ConnectID.String(), &models.PaginationRequest{Page: 1, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	last, err := service.GetTransactionsByAccount(account.ConnectID.String(), &models.PaginationRequest{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestGetTransaction_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newTestTransactionService(db)

	_, err := service.GetTransaction(uuid.NewString())
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestGetTransactionsByCode(t *testing.T) {
	db := setupTestDB(t)
	redemptionService := newTestRedemptionService(db)
	service := newTestTransactionService(db)

	account := createTestAccount(t, db, 0, true)
	code := createTestCode(t, db, 15)

	_, err := redemptionService.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
	require.NoError(t, err)

	transactions, err := service.GetTransactionsByCode(code.ID.String())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.TransactionTypeCodeRedemption, transactions[0].Type)
}
