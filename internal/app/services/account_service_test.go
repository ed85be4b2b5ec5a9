package services

import (
	"testing"

	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyOTP(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAccountService(db)

	account := createTestAccount(t, db, 0, false)
	otp := "123456"
	require.NoError(t, db.Model(account).Update("otp", otp).Error)

	t.Run("wrong code", func(t *testing.T) {
		_, err := service.VerifyOTP(account.ConnectID.String(), &models.VerifyOTPRequest{OTP: "000000"})
		require.Error(t, err)

		fresh, getErr := service.GetAccount(account.ConnectID.String())
		require.NoError(t, getErr)
		assert.False(t, fresh.EmailVerified)
	})

	t.Run("correct code", func(t *testing.T) {
		verified, err := service.VerifyOTP(account.ConnectID.String(), &models.VerifyOTPRequest{OTP: otp})
		require.NoError(t, err)
		assert.True(t, verified.EmailVerified)
		assert.Nil(t, verified.OTP)
	})

	t.Run("already verified is a no-op", func(t *testing.T) {
		verified, err := service.VerifyOTP(account.ConnectID.String(), &models.VerifyOTPRequest{OTP: "000000"})
		require.NoError(t, err)
		assert.True(t, verified.EmailVerified)
	})
}

func TestResendOTP(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAccountService(db)

	account := createTestAccount(t, db, 0, false)

	require.NoError(t, service.ResendOTP(account.ConnectID.String()))

	var updated models.Account
	require.NoError(t, db.First(&updated, "connect_id = ?", account.ConnectID).Error)
	require.NotNil(t, updated.OTP)
	assert.Len(t, *updated.OTP, 6)
}

func TestResendOTP_AlreadyVerified(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAccountService(db)

	account := createTestAccount(t, db, 0, true)

	err := service.ResendOTP(account.ConnectID.String())
	require.Error(t, err)
}

func TestUpdateAccount(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAccountService(db)

	account := createTestAccount(t, db, 0, true)

	username := "new-name"
	fullName := "Full Name"
	phone := "+6281234567890"
	updated, err := service.UpdateAccount(account.ConnectID.String(), &models.AccountUpdateRequest{
		Username: &username,
		FullName: &fullName,
		Phone:    &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, username, updated.Username)
	require.NotNil(t, updated.FullName)
	assert.Equal(t, fullName, *updated.FullName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
}

func TestGetAccountByEmail(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAccountService(db)

	account := createTestAccount(t, db, 30, true)

	found, err := service.GetAccountByEmail(account.Email)
	require.NoError(t, err)
	assert.Equal(t, account.ConnectID, found.ConnectID)
	assert.Equal(t, int64(30), found.Points)

	_, err = service.GetAccountByEmail("missing@example.com")
	require.Error(t, err)
}

func TestDeleteAccount(t *testing.T) {
	db := setupTestDB(t)
	service := newTestAccountService(db)

	account := createTestAccount(t, db, 0, true)

	require.NoError(t, service.DeleteAccount(account.ConnectID.String()))

	_, err := service.GetAccount(account.ConnectID.String())
	require.Error(t, err)
}

func TestGetActivities_OrderAndPaging(t *testing.T) {
	db := setupTestDB(t)
	accountService := newTestAccountService(db)
	transactionService := newTestTransactionService(db)

	account := createTestAccount(t, db, 0, true)

	for i := int64(1); i <= 4; i++ {
		_, err := transactionService.CreditByEmail(&models.AdminCreditRequest{Email: account.Email, Points: i}, nil)
		require.NoError(t, err)
	}

	activities, err := accountService.GetActivities(account.ConnectID.String(), 10, 0)
	require.NoError(t, err)
	require.Len(t, activities, 4)

	paged, err := accountService.GetActivities(account.ConnectID.String(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 2)
}
