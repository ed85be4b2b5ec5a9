package deliveries

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
)

type CodeHandler struct {
	codeService    *services.CodeService
	authMiddleware *middlewares.AuthMiddleware
}

func NewCodeHandler(codeService *services.CodeService, authMiddleware *middlewares.AuthMiddleware) *CodeHandler {
	return &CodeHandler{
		codeService:    codeService,
		authMiddleware: authMiddleware,
	}
}

func (h *CodeHandler) RegisterRoutes(router fiber.Router) {
	codeGroup := router.Group("/codes")

	// Code management is admin only
	codeGroup.Post("/", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.CreateCode)
	codeGroup.Get("/", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.GetCodes)
	codeGroup.Get("/:id", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin, h.GetCode)
}

func (h *CodeHandler) CreateCode(c *fiber.Ctx) error {
	account := c.Locals("account").(*models.Account)

	var req models.CodeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	createdBy := account.ConnectID
	code, err := h.codeService.CreateCode(&req, &createdBy)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, code)
}

func (h *CodeHandler) GetCode(c *fiber.Ctx) error {
	id := c.Params("id")

	code, err := h.codeService.GetCode(id)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, code)
}

func (h *CodeHandler) GetCodes(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		limit = 10
	}

	filter := &models.CodeFilter{
		From: pkg.ParseDateFilter(c.Query("from")),
		To:   pkg.ParseDateFilter(c.Query("to")),
	}

	switch c.Query("used") {
	case "true":
		used := true
		filter.Used = &used
	case "false":
		used := false
		filter.Used = &used
	}

	pagination := &models.PaginationRequest{Page: page, Limit: limit}
	result, err := h.codeService.GetCodes(pagination, filter)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, result)
}
