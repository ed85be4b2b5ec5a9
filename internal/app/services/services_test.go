package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database shared across the
	// pooled sessions gorm opens.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.Code{},
		&models.Redemption{},
		&models.Transaction{},
		&models.Activity{},
		&models.Product{},
		&models.Banner{},
		&models.TerminalAPIKey{},
		&models.TerminalAPIKeyUsage{},
		&models.AuditLog{},
	))

	return db
}

func newTestAccountService(db *gorm.DB) *AccountService {
	return NewAccountService(db, infrastructures.NewValidator(), NewConnectService(), nil)
}

func newTestRedemptionService(db *gorm.DB) *RedemptionService {
	validator := infrastructures.NewValidator()
	codeService := NewCodeService(db, validator)
	accountService := newTestAccountService(db)
	auditService := NewAuditService(db)
	return NewRedemptionService(db, validator, codeService, accountService, auditService)
}

func newTestTransactionService(db *gorm.DB) *TransactionService {
	validator := infrastructures.NewValidator()
	accountService := newTestAccountService(db)
	productService := NewProductService(db, validator)
	auditService := NewAuditService(db)
	return NewTransactionService(db, validator, accountService, productService, auditService)
}

func createTestAccount(t *testing.T, db *gorm.DB, points int64, verified bool) *models.Account {
	t.Helper()

	account := &models.Account{
		ConnectID:     uuid.New(),
		Email:         uuid.NewString() + "@example.com",
		Username:      "tester",
		Role:          models.AccountRoleUser,
		Points:        points,
		EmailVerified: verified,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func createTestCode(t *testing.T, db *gorm.DB, points int64) *models.Code {
	t.Helper()

	code := &models.Code{Points: points}
	require.NoError(t, db.Create(code).Error)
	return code
}

func createTestProduct(t *testing.T, db *gorm.DB, id string, pointsPerUnit int64, pricePerUnit string) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:            id,
		Name:          id,
		PointsPerUnit: pointsPerUnit,
		PricePerUnit:  decimal.RequireFromString(pricePerUnit),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
