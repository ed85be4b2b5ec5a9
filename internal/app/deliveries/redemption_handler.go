package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
)

type RedemptionHandler struct {
	redemptionService *services.RedemptionService
	authMiddleware    *middlewares.AuthMiddleware
}

func NewRedemptionHandler(redemptionService *services.RedemptionService, authMiddleware *middlewares.AuthMiddleware) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionService: redemptionService,
		authMiddleware:    authMiddleware,
	}
}

func (h *RedemptionHandler) RegisterRoutes(router fiber.Router) {
	redemptionGroup := router.Group("/redemptions")

	redemptionGroup.Post("/redeem", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.Redeem)
	redemptionGroup.Get("/me", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.GetMyRedemptions)
	redemptionGroup.Get("/:id", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.GetRedemption)
}

func (h *RedemptionHandler) Redeem(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	var req models.RedeemRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	result, err := h.redemptionService.Redeem(account.ConnectID.String(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, result)
}

func (h *RedemptionHandler) GetRedemption(c *fiber.Ctx) error {
	id := c.Params("id")

	redemption, err := h.redemptionService.GetRedemption(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, redemption)
}

func (h *RedemptionHandler) GetMyRedemptions(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		offset = 0
	}

	redemptions, err := h.redemptionService.GetRedemptionsByAccount(account.ConnectID.String(), limit, offset)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, redemptions)
}
