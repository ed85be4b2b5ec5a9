package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
)

type ProductHandler struct {
	productService *services.ProductService
	authMiddleware *middlewares.AuthMiddleware
}

func NewProductHandler(productService *services.ProductService, authMiddleware *middlewares.AuthMiddleware) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authMiddleware: authMiddleware,
	}
}

func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productGroup := router.Group("/products")

	productGroup.Get("/", h.GetProducts)
	productGroup.Get("/:id", h.GetProduct)
	productGroup.Put("/prices", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.SetPrices)
}

func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetProducts()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.productService.GetProduct(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, product)
}

func (h *ProductHandler) SetPrices(c *fiber.Ctx) error {
	var req models.ProductPricesUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	products, err := h.productService.SetPrices(&req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, products)
}
