package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
)

type BannerHandler struct {
	bannerService  *services.BannerService
	authMiddleware *middlewares.AuthMiddleware
}

func NewBannerHandler(bannerService *services.BannerService, authMiddleware *middlewares.AuthMiddleware) *BannerHandler {
	return &BannerHandler{
		bannerService:  bannerService,
		authMiddleware: authMiddleware,
	}
}

func (h *BannerHandler) RegisterRoutes(router fiber.Router) {
	bannerGroup := router.Group("/banners")

	bannerGroup.Get("/", h.GetBanners)
	bannerGroup.Get("/:id", h.GetBanner)
	bannerGroup.Post("/", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.CreateBanner)
	bannerGroup.Delete("/:id", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.DeleteBanner)
}

func (h *BannerHandler) CreateBanner(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	var req models.BannerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	createdBy := account.ConnectID
	banner, err := h.bannerService.CreateBanner(&req, &createdBy)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, banner)
}

func (h *BannerHandler) GetBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	banner, err := h.bannerService.GetBanner(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, banner)
}

func (h *BannerHandler) GetBanners(c *fiber.Ctx) error {
	banners, err := h.bannerService.GetBanners()
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, banners)
}

func (h *BannerHandler) DeleteBanner(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.bannerService.DeleteBanner(id); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}
