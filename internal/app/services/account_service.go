package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"gorm.io/gorm"
)

type AccountService struct {
	db             *gorm.DB
	validator      *infrastructures.Validator
	connectService *ConnectService
	mailClient     *infrastructures.MailClient
}

func NewAccountService(db *gorm.DB, validator *infrastructures.Validator, connectService *ConnectService, mailClient *infrastructures.MailClient) *AccountService {
	return &AccountService{
		db:             db,
		validator:      validator,
		connectService: connectService,
		mailClient:     mailClient,
	}
}

// CreateAccount registers a loyalty account for the authenticated Connect
// user. The account starts at 0 points and unverified; an OTP is generated
// and mailed for email verification.
func (s *AccountService) CreateAccount(accessToken string) (*models.Account, error) {
	connectUser, err := s.connectService.GetCurrentUser(accessToken)
	if err != nil {
		return nil, err
	}

	if connectUser == nil {
		return nil, errors.NewBadRequestError("Connect user not found")
	}

	// Check if account already exists
	var existingAccount models.Account
	err = s.db.Where("connect_id = ?", connectUser.ID).First(&existingAccount).Error
	if existingAccount.ConnectID != uuid.Nil {
		return nil, errors.NewBadRequestError("Account already exists")
	}

	role := models.AccountRoleUser
	if connectUser.GlobalRole == models.ConnectUserRoleAdmin {
		role = models.AccountRoleAdmin
	}

	otp := pkg.GenerateOTP()
	account := &models.Account{
		ConnectID:     connectUser.ID,
		Email:         connectUser.Email,
		Username:      connectUser.Username,
		Role:          role,
		Points:        0,
		EmailVerified: false,
		OTP:           &otp,
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create account")
	}

	if err := s.sendOTPMail(account.Email, otp); err != nil {
		// Registration stays valid; the OTP can be resent.
		logrus.Warnf("failed to send OTP mail to %s: %v", account.Email, err)
	}

	return account, nil
}

func (s *AccountService) GetAccount(connectId string) (*models.Account, error) {
	connectIdUUID, err := uuid.Parse(connectId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid connect ID format")
	}

	var account models.Account
	err = s.db.Where("connect_id = ?", connectIdUUID).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Account not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get account")
	}

	return &account, nil
}

// GetAccountByEmail resolves an account by its unique email. Used by the
// admin manual-credit flow.
func (s *AccountService) GetAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := s.db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Account not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get account")
	}

	return &account, nil
}

func (s *AccountService) GetAccountByToken(accessToken string) (*models.Account, error) {
	connectUser, err := s.connectService.GetCurrentUser(accessToken)
	if err != nil {
		return nil, err
	}

	if connectUser == nil {
		return nil, errors.NewBadRequestError("Connect user not found")
	}

	return s.GetAccount(connectUser.ID.String())
}

func (s *AccountService) UpdateAccount(connectId string, req *models.AccountUpdateRequest) (*models.Account, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.GetAccount(connectId)
	if err != nil {
		return nil, err
	}

	// Update fields if provided
	if req.Username != nil {
		account.Username = *req.Username
	}
	if req.FullName != nil {
		account.FullName = req.FullName
	}
	if req.Phone != nil {
		account.Phone = req.Phone
	}
	if req.Birthday != nil {
		account.Birthday = req.Birthday
	}

	if err := s.db.Save(account).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update account")
	}

	return account, nil
}

// VerifyOTP checks the submitted code against the stored one and marks the
// account verified. The OTP is cleared on success.
func (s *AccountService) VerifyOTP(connectId string, req *models.VerifyOTPRequest) (*models.Account, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	account, err := s.GetAccount(connectId)
	if err != nil {
		return nil, err
	}

	if account.EmailVerified {
		return account, nil
	}

	if account.OTP == nil || *account.OTP != req.OTP {
		return nil, errors.NewBadRequestError("Invalid verification code")
	}

	account.EmailVerified = true
	account.OTP = nil

	if err := s.db.Save(account).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to update account verification")
	}

	return account, nil
}

// ResendOTP generates a fresh code and mails it.
func (s *AccountService) ResendOTP(connectId string) error {
	account, err := s.GetAccount(connectId)
	if err != nil {
		return err
	}

	if account.EmailVerified {
		return errors.NewBadRequestError("Account is already verified")
	}

	otp := pkg.GenerateOTP()
	account.OTP = &otp

	if err := s.db.Save(account).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to update account OTP")
	}

	if err := s.sendOTPMail(account.Email, otp); err != nil {
		return errors.NewInternalServerError(err, "Failed to send verification mail")
	}

	return nil
}

// GetActivities returns the account's recent point-affecting events, newest
// first.
func (s *AccountService) GetActivities(connectId string, limit, offset int) ([]models.Activity, error) {
	connectIdUUID, err := uuid.Parse(connectId)
	if err != nil {
		return nil, errors.NewBadRequestError("Invalid connect ID format")
	}

	var activities []models.Activity
	query := s.db.Where("account_id = ?", connectIdUUID).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err = query.Find(&activities).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to get activities")
	}

	return activities, nil
}

func (s *AccountService) DeleteAccount(connectId string) error {
	account, err := s.GetAccount(connectId)
	if err != nil {
		return err
	}

	if err := s.db.Delete(account).Error; err != nil {
		return errors.NewInternalServerError(err, "Failed to delete account")
	}

	return nil
}

func (s *AccountService) sendOTPMail(email, otp string) error {
	if s.mailClient == nil {
		return nil
	}
	return s.mailClient.Send(
		email,
		"Verify your Stasiunku account",
		"Your verification code is "+otp+". It expires when a new code is requested.",
	)
}
