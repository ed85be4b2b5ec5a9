package deliveries

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
)

// TerminalAPIKeyHandler exposes admin management of POS terminal keys.
type TerminalAPIKeyHandler struct {
	apiKeyService  *services.TerminalAPIKeyService
	authMiddleware *middlewares.AuthMiddleware
}

func NewTerminalAPIKeyHandler(apiKeyService *services.TerminalAPIKeyService, authMiddleware *middlewares.AuthMiddleware) *TerminalAPIKeyHandler {
	return &TerminalAPIKeyHandler{
		apiKeyService:  apiKeyService,
		authMiddleware: authMiddleware,
	}
}

func (h *TerminalAPIKeyHandler) RegisterRoutes(router fiber.Router) {
	keyGroup := router.Group("/terminal-keys", h.authMiddleware.AuthConnect, h.authMiddleware.AuthAccount, h.authMiddleware.RequireAdmin)

	keyGroup.Post("/", h.CreateAPIKey)
	keyGroup.Get("/", h.ListAPIKeys)
	keyGroup.Delete("/:id", h.RevokeAPIKey)
}

func (h *TerminalAPIKeyHandler) CreateAPIKey(c *fiber.Ctx) error {
	var req models.TerminalAPIKeyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	key, err := h.apiKeyService.CreateAPIKey(c.Context(), &req)
	if err != nil {
		if err == services.ErrInvalidScope {
			return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid scope"))
		}
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, key)
}

func (h *TerminalAPIKeyHandler) ListAPIKeys(c *fiber.Ctx) error {
	keys, err := h.apiKeyService.ListAPIKeys(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, keys)
}

func (h *TerminalAPIKeyHandler) RevokeAPIKey(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return pkg.ErrorResponse(c, errors.NewBadRequestError("Invalid API key ID format"))
	}

	if err := h.apiKeyService.RevokeAPIKey(c.Context(), id); err != nil {
		if err == services.ErrInvalidAPIKey {
			return pkg.ErrorResponse(c, errors.NewNotFoundError("API key not found"))
		}
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}
