package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
)

type AccountHandler struct {
	accountService *services.AccountService
	authMiddleware *middlewares.AuthMiddleware
}

func NewAccountHandler(accountService *services.AccountService, authMiddleware *middlewares.AuthMiddleware) *AccountHandler {
	return &AccountHandler{accountService: accountService, authMiddleware: authMiddleware}
}

func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	accountGroup := router.Group("/accounts")

	accountGroup.Post("/register", h.authMiddleware.AuthConnect, h.Register)
	accountGroup.Get("/me", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.GetMe)
	accountGroup.Patch("/me", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.UpdateMe)
	accountGroup.Delete("/me", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.DeleteMe)
	accountGroup.Get("/me/activities", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.GetMyActivities)
	accountGroup.Post("/me/verify-otp", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.VerifyOTP)
	accountGroup.Post("/me/resend-otp", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.ResendOTP)
	accountGroup.Get("/:id", h.GetAccountByID)
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	accessToken := c.Get("Authorization")

	account, err := h.accountService.CreateAccount(accessToken)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, account)
}

func (h *AccountHandler) GetMe(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)
	return pkg.SuccessResponse(c, account)
}

func (h *AccountHandler) GetAccountByID(c *fiber.Ctx) error {
	id := c.Params("id")

	account, err := h.accountService.GetAccount(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, account)
}

func (h *AccountHandler) GetMyActivities(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		offset = 0
	}

	activities, err := h.accountService.GetActivities(account.ConnectID.String(), limit, offset)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, activities)
}

func (h *AccountHandler) UpdateMe(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	var req models.AccountUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	account, err := h.accountService.UpdateAccount(account.ConnectID.String(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, account)
}

func (h *AccountHandler) VerifyOTP(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	var req models.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	account, err := h.accountService.VerifyOTP(account.ConnectID.String(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, account)
}

func (h *AccountHandler) ResendOTP(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	if err := h.accountService.ResendOTP(account.ConnectID.String()); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *AccountHandler) DeleteMe(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	err := h.accountService.DeleteAccount(account.ConnectID.String())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}
