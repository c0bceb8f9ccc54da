package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/salesflow/crm-api/docs"
	"github.com/salesflow/crm-api/internal/api/handler"
	"github.com/salesflow/crm-api/internal/api/middleware"
	"github.com/salesflow/crm-api/internal/core/service"
	"github.com/salesflow/crm-api/internal/core/token"
	"github.com/salesflow/crm-api/internal/infrastructure/cascade"
	"github.com/salesflow/crm-api/internal/infrastructure/config"
	mongodb "github.com/salesflow/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/salesflow/crm-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route layout mirrors the session design: the auth issuance endpoints,
// health probes, metrics, and swagger are public; everything under /api
// (except /api/auth) sits behind the Session gate; /api/users additionally
// requires the admin role.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	secure := cfg.Env == "production"
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	runner := cascade.NewRunner(log)

	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	quotationRepo := mongodb.NewQuotationRepository(db)
	reminderRepo := mongodb.NewReminderRepository(db)

	authService := service.NewAuthService(userRepo, codec, log)
	userService := service.NewUserService(userRepo, clientRepo, quotationRepo, reminderRepo, runner, log)
	clientService := service.NewClientService(clientRepo, quotationRepo, reminderRepo, runner, log)
	quotationService := service.NewQuotationService(quotationRepo, clientRepo, log)
	reminderService := service.NewReminderService(reminderRepo, clientRepo, log)
	dashboardService := service.NewDashboardService(clientRepo, quotationRepo, reminderRepo, redisdb.NewStatsCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService, codec.TTL(), secure)
	profileHandler := handler.NewProfileHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	quotationHandler := handler.NewQuotationHandler(quotationService)
	reminderHandler := handler.NewReminderHandler(reminderService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected routes (Session gate) ---
	protected := e.Group("/api", middleware.Session(codec, secure))

	protected.GET("/profile", profileHandler.Get)
	protected.PUT("/profile", profileHandler.Update)

	protected.GET("/dashboard/stats", dashboardHandler.Stats)

	protected.GET("/clients", clientHandler.List)
	protected.POST("/clients", clientHandler.Create)
	protected.GET("/clients/:id", clientHandler.Get)
	protected.PUT("/clients/:id", clientHandler.Update)
	protected.DELETE("/clients/:id", clientHandler.Delete)

	protected.GET("/quotations", quotationHandler.List)
	protected.POST("/quotations", quotationHandler.Create)
	protected.GET("/quotations/:id", quotationHandler.Get)
	protected.PUT("/quotations/:id", quotationHandler.Update)
	protected.DELETE("/quotations/:id", quotationHandler.Delete)

	protected.GET("/reminders", reminderHandler.List)
	protected.POST("/reminders", reminderHandler.Create)
	protected.GET("/reminders/:id", reminderHandler.Get)
	protected.PATCH("/reminders/:id", reminderHandler.Toggle)
	protected.DELETE("/reminders/:id", reminderHandler.Delete)

	// --- Admin-only routes ---
	admin := protected.Group("/users", middleware.RequireAdmin())
	admin.GET("", userHandler.List)
	admin.GET("/:id", userHandler.Get)
	admin.PUT("/:id", userHandler.Update)
	admin.DELETE("/:id", userHandler.Delete)

	return e
}
