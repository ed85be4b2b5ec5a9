//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/stasiunku/loyalty-core/internal/app/deliveries"
	"github.com/stasiunku/loyalty-core/internal/app/middlewares"
	"github.com/stasiunku/loyalty-core/internal/app/services"
	"github.com/stasiunku/loyalty-core/internal/infrastructures"
	"github.com/stasiunku/loyalty-core/pkg/ratelimit"
)

// Application represents the main application container for loyalty-core
type Application struct {
	HealthHandler         *deliveries.HealthHandler
	AccountHandler        *deliveries.AccountHandler
	CodeHandler           *deliveries.CodeHandler
	RedemptionHandler     *deliveries.RedemptionHandler
	TransactionHandler    *deliveries.TransactionHandler
	ProductHandler        *deliveries.ProductHandler
	BannerHandler         *deliveries.BannerHandler
	PosHandler            *deliveries.PosHandler
	TerminalAPIKeyHandler *deliveries.TerminalAPIKeyHandler
	RateLimitMiddleware   *middlewares.RateLimitMiddleware
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	// Apply global rate limit for public API
	router.Use(app.RateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit))

	// Redeem endpoint gets a stricter per-account limit
	redeemGroup := router.Group("/redemptions/redeem")
	redeemGroup.Use(app.RateLimitMiddleware.LimitByAccount(ratelimit.RedeemLimit))

	// Register all handlers
	app.HealthHandler.RegisterRoutes(router)
	app.AccountHandler.RegisterRoutes(router)
	app.CodeHandler.RegisterRoutes(router)
	app.RedemptionHandler.RegisterRoutes(router)
	app.TransactionHandler.RegisterRoutes(router)
	app.ProductHandler.RegisterRoutes(router)
	app.BannerHandler.RegisterRoutes(router)
	app.PosHandler.RegisterRoutes(router)
	app.TerminalAPIKeyHandler.RegisterRoutes(router)
}

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	infrastructures.NewStorageClient,
	infrastructures.NewMailClient,
	wire.Value("loyalty"),
	wire.Bind(new(ratelimit.RateLimiter), new(*ratelimit.RedisRateLimiter)),
	ratelimit.NewRedisRateLimiter,
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewConnectService,
	services.NewAccountService,
	services.NewCodeService,
	services.NewRedemptionService,
	services.NewTransactionService,
	services.NewProductService,
	services.NewBannerService,
	services.NewAuditService,
	services.NewTerminalAPIKeyService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewAuthMiddleware,
	middlewares.NewAPIKeyMiddleware,
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewAccountHandler,
	deliveries.NewCodeHandler,
	deliveries.NewRedemptionHandler,
	deliveries.NewTransactionHandler,
	deliveries.NewProductHandler,
	deliveries.NewBannerHandler,
	deliveries.NewPosHandler,
	deliveries.NewTerminalAPIKeyHandler,
	wire.Struct(new(Application), "*"), // This tells Wire to build the Application struct
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication() (*Application, error) {
	wire.Build(
		infrastructureSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil // Wire will populate the Application struct based on handlerSet
}
