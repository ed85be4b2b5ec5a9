package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
	"github.com/stasiunku/loyalty-core/pkg/apikey"
)

// PosHandler serves the point-of-sale terminals: member lookup by scanned
// account ID and point debits for purchases.
type PosHandler struct {
	transactionService *services.TransactionService
	accountService     *services.AccountService
	productService     *services.ProductService
	apiKeyMiddleware   *middlewares.APIKeyMiddleware
}

func NewPosHandler(transactionService *services.TransactionService, accountService *services.AccountService, productService *services.ProductService, apiKeyMiddleware *middlewares.APIKeyMiddleware) *PosHandler {
	return &PosHandler{
		transactionService: transactionService,
		accountService:     accountService,
		productService:     productService,
		apiKeyMiddleware:   apiKeyMiddleware,
	}
}

func (h *PosHandler) RegisterRoutes(router fiber.Router) {
	posGroup := router.Group("/pos")

	posGroup.Get("/accounts/:id", h.apiKeyMiddleware.RequireScope(apikey.ScopeRead), h.GetAccount)
	posGroup.Get("/products", h.apiKeyMiddleware.RequireScope(apikey.ScopeRead), h.GetProducts)
	posGroup.Post("/purchase", h.apiKeyMiddleware.RequireScope(apikey.ScopePurchase), h.Purchase)
}

// GetAccount resolves a scanned member QR payload to the account shown on
// the terminal.
func (h *PosHandler) GetAccount(c *fiber.Ctx) error {
	id := c.Params("id")

	account, err := h.accountService.GetAccount(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, account)
}

func (h *PosHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProducts()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, products)
}

func (h *PosHandler) Purchase(c *fiber.Ctx) error {
	var req models.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	response, err := h.transactionService.Purchase(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, response)
}
