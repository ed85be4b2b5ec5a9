package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/stasiunku/loyalty-core/internal/app/errors"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"github.com/stasiunku/loyalty-core/internal/app/pkg"
	"github.com/stasiunku/loyalty-core/internal/app/services"
	"github.com/stasiunku/loyalty-core/pkg/apikey"
	"github.com/stasiunku/loyalty-core/pkg/ratelimit"
)

// APIKeyMiddleware authenticates point-of-sale terminals by their API key.
type APIKeyMiddleware struct {
	apiKeyService *services.TerminalAPIKeyService
	rateLimiter   ratelimit.RateLimiter
}

// NewAPIKeyMiddleware creates a new APIKeyMiddleware
func NewAPIKeyMiddleware(apiKeyService *services.TerminalAPIKeyService, rateLimiter ratelimit.RateLimiter) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		apiKeyService: apiKeyService,
		rateLimiter:   rateLimiter,
	}
}

// RequireScope creates a middleware that authenticates the X-API-Key header
// and checks that the key carries the given scope.
func (m *APIKeyMiddleware) RequireScope(scope apikey.Scope) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-API-Key")
		if key == "" {
			return pkg.ErrorResponse(c, errors.NewUnauthorizedError("API key required"))
		}

		terminalKey, err := m.apiKeyService.GetAPIKey(c.Context(), key)
		if err != nil {
			return pkg.ErrorResponse(c, errors.NewUnauthorizedError("Invalid or expired API key"))
		}

		if !terminalKey.HasScope(scope) {
			return pkg.ErrorResponse(c, errors.NewForbiddenError("API key lacks required scope"))
		}

		// Per-terminal rate limit
		limitKey := fmt.Sprintf("terminal:%s", terminalKey.ID)
		allowed, info := m.rateLimiter.Allow(limitKey, ratelimit.TerminalAPILimit)
		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		if !allowed {
			return pkg.ErrorResponse(c, errors.NewTooManyRequestsError("Rate limit exceeded", info.Limit, info.Reset.Unix()))
		}

		c.Locals("terminal_key", terminalKey)

		err = c.Next()

		// Usage logging is best effort and must not change the response.
		usage := &models.TerminalAPIKeyUsage{
			APIKeyID:   terminalKey.ID,
			Endpoint:   c.Path(),
			Method:     c.Method(),
			IPAddress:  getIPAddress(c),
			StatusCode: c.Response().StatusCode(),
		}
		_ = m.apiKeyService.LogAPIKeyUsage(c.Context(), usage)

		return err
	}
}
