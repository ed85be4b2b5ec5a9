package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
)

type TransactionHandler struct {
	transactionService *services.TransactionService
	authMiddleware     *middlewares.AuthMiddleware
}

func NewTransactionHandler(transactionService *services.TransactionService, authMiddleware *middlewares.AuthMiddleware) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		authMiddleware:     authMiddleware,
	}
}

func (h *TransactionHandler) RegisterRoutes(router fiber.Router) {
	transactionGroup := router.Group("/transactions")

	transactionGroup.Get("/me", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.GetMyTransactions)
	transactionGroup.Post("/credit", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.AdminCredit)
	transactionGroup.Get("/code/:code_id", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.GetTransactionsByCode)
	transactionGroup.Get("/:id", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.GetTransaction)
}

// AdminCredit applies a manual point credit to the account with the given
// email, bypassing the code mechanism.
func (h *TransactionHandler) AdminCredit(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	var req models.AdminCreditRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	creditedBy := account.ConnectID
	response, err := h.transactionService.CreditByEmail(&req, &creditedBy)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, response)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id := c.Params("id")

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, transaction)
}

func (h *TransactionHandler) GetMyTransactions(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	pagination := &models.PaginationRequest{Page: page, Limit: limit}
	result, err := h.transactionService.GetTransactionsByAccount(account.ConnectID.String(), pagination)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, result)
}

func (h *TransactionHandler) GetTransactionsByCode(c *fiber.Ctx) error {
	codeId := c.Params("code_id")

	transactions, err := h.transactionService.GetTransactionsByCode(codeId)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, transactions)
}
