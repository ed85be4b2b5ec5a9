package services

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeem_Success(t *testing.T) {
	db := setupTestDB(t)
	service := newTestRedemptionService(db)

	account := createTestAccount(t, db, 100, true)
	code := createTestCode(t, db, 50)

	result, err := service.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, int64(50), result.PointsAwarded)
	assert.Equal(t, int64(150), result.NewBalance)
	assert.Equal(t, models.TransactionTypeCodeRedemption, result.Transaction.Type)
	assert.Equal(t, int64(50), result.Transaction.PointsDelta)
	require.NotNil(t, result.Transaction.CodeID)
	assert.Equal(t, code.ID, *result.Transaction.CodeID)

	var updatedCode models.Code
	require.NoError(t, db.First(&updatedCode, "id = ?", code.ID).Error)
	assert.True(t, updatedCode.Used)
	require.NotNil(t, updatedCode.UsedBy)
	assert.Equal(t, account.ConnectID, *updatedCode.UsedBy)
	assert.NotNil(t, updatedCode.UsedAt)

	var updatedAccount models.Account
	require.NoError(t, db.First(&updatedAccount, "connect_id = ?", account.ConnectID).Error)
	assert.Equal(t, int64(150), updatedAccount.Points)

	var activities []models.Activity
	require.NoError(t, db.Where("account_id = ?", account.ConnectID).Find(&activities).Error)
	require.Len(t, activities, 1)
	assert.Equal(t, int64(50), activities[0].PointsDelta)
	assert.Equal(t, result.Transaction.ID, activities[0].ReferenceID)
}

func TestRedeem_CodeAlreadyUsed(t *testing.T) {
	db := setupTestDB(t)
	service := newTestRedemptionService(db)

	account := createTestAccount(t, db, 0, true)
	code := createTestCode(t, db, 25)

	_, err := service.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
	require.NoError(t, err)

	_, err = service.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	assert.Contains(t, appErr.Message, ErrCodeAlreadyUsed)

	// The failed attempt must not credit anything.
	var updatedAccount models.Account
	require.NoError(t, db.First(&updatedAccount, "connect_id = ?", account.ConnectID).Error)
	assert.Equal(t, int64(25), updatedAccount.Points)

	var count int64
	require.NoError(t, db.Model(&models.Redemption{}).Where("code_id = ?", code.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRedeem_SameCodeTwoAccounts(t *testing.T) {
	db := setupTestDB(t)
	service := newTestRedemptionService(db)

	first := createTestAccount(t, db, 0, true)
	second := createTestAccount(t, db, 0, true)
	code := createTestCode(t, db, 10)

	_, err := service.Redeem(first.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
	require.NoError(t, err)

	_, err = service.Redeem(second.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
	require.Error(t, err)

	var updatedSecond models.Account
	require.NoError(t, db.First(&updatedSecond, "connect_id = ?", second.ConnectID).Error)
	assert.Equal(t, int64(0), updatedSecond.Points)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("code_id = ?", code.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRedeem_UnknownCode(t *testing.T) {
	db := setupTestDB(t)
	service := newTestRedemptionService(db)

	account := createTestAccount(t, db, 0, true)

	_, err := service.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: uuid.NewString()})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
	assert.Contains(t, appErr.Message, ErrCodeInvalidCode)
}

func TestRedeem_MalformedCode(t *testing.T) {
	db := setupTestDB(t)
	service := newTestRedemptionService(db)

	account := createTestAccount(t, db, 0, true)

	_, err := service.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: "not-a-uuid"})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestRedeem_UnverifiedAccount(t *testing.T) {
	db := setupTestDB(t)
	service := newTestRedemptionService(db)

	account := createTestAccount(t, db, 0, false)
	code := createTestCode(t, db, 10)

	_, err := service.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.StatusCode)
	assert.Contains(t, appErr.Message, ErrCodeUnverified)

	// The code stays unused for a later, verified attempt.
	var updatedCode models.Code
	require.NoError(t, db.First(&updatedCode, "id = ?", code.ID).Error)
	assert.False(t, updatedCode.Used)
}

func TestGetRedemptionsByAccount(t *testing.T) {
	db := setupTestDB(t)
	service := newTestRedemptionService(db)

	account := createTestAccount(t, db, 0, true)
	other := createTestAccount(t, db, 0, true)

	for i := 0; i < 3; i++ {
		code := createTestCode(t, db, 5)
		_, err := service.Redeem(account.ConnectID.String(), &models.RedeemRequest{CodeID: code.ID.String()})
		require.NoError(t, err)
	}
	otherCode := createTestCode(t, db, 5)
	_, err := service.Redeem(other.ConnectID.String(), &models.RedeemRequest{CodeID: otherCode.ID.String()})
	require.NoError(t, err)

	redemptions, err := service.GetRedemptionsByAccount(account.ConnectID.String(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, redemptions, 3)

	limited, err := service.GetRedemptionsByAccount(account.ConnectID.String(), 2, 0)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
