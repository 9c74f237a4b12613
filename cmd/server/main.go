package main

import (
	"voiceforge/internal/apperr"
	"voiceforge/internal/handler"
	"voiceforge/internal/mailer"
	"voiceforge/internal/middleware"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
	"voiceforge/internal/service"
	"voiceforge/pkg/config"
	"voiceforge/pkg/database"
	"voiceforge/pkg/jwtutil"
	"voiceforge/pkg/logger"
	"voiceforge/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("voiceforge")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting voiceforge service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Repositories
	userRepo := repository.NewUserRepo(db)
	tenantRepo := repository.NewTenantRepo(db)
	voiceRepo := repository.NewPersonalVoiceRepo(db)
	themeRepo := repository.NewThemeRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	// Services
	resetMailer := mailer.New(cfg.SMTP, cfg.FrontendURL)
	authService := service.NewAuthService(userRepo, tokenRepo, resetMailer)
	tenantService := service.NewTenantService(tenantRepo)
	voiceService := service.NewPersonalVoiceService(voiceRepo)
	themeService := service.NewThemeService(themeRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	voiceHandler := handler.NewPersonalVoiceHandler(voiceService)
	themeHandler := handler.NewThemeHandler(themeService)
	userHandler := handler.NewUserHandler(userService)

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = apperr.ErrorHandler()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	// Public routes - no authentication required
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)

	api := e.Group("/api")

	// Authentication routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// Tenant self-registration is public: it bootstraps the first admin
	api.POST("/tenants/register", tenantHandler.Register)

	// Tenant management - platform admins only
	tenants := api.Group("/tenants")
	tenants.Use(middleware.AuthMiddleware)
	tenants.Use(middleware.RequireGlobalRole(model.RoleAdmin))
	tenants.GET("", tenantHandler.List)
	tenants.POST("", tenantHandler.Create)
	tenants.GET("/:id", tenantHandler.Get)
	tenants.PUT("/:id", tenantHandler.Update)
	tenants.PATCH("/:id/status", tenantHandler.SetStatus)
	tenants.DELETE("/:id", tenantHandler.Delete)

	// Personal voices - authenticated, tenant-scoped via x-tenant-slug
	voices := api.Group("/personal-voices")
	voices.Use(middleware.AuthMiddleware)
	voices.Use(middleware.TenantMiddleware(tenantService))
	voices.GET("", voiceHandler.List)
	voices.POST("", voiceHandler.Create)
	voices.GET("/id/:id", voiceHandler.GetByID)
	voices.GET("/key/:key", voiceHandler.GetByKey)
	voices.PUT("/:id", voiceHandler.Update)
	voices.DELETE("/:id", voiceHandler.Delete)

	// Themes - reads are open to any tenant caller, writes are admin-only
	themes := api.Group("/themes")
	themes.Use(middleware.OptionalAuthMiddleware)
	themes.Use(middleware.TenantMiddleware(tenantService))
	themes.GET("", themeHandler.Get)
	themes.POST("", themeHandler.Upsert, middleware.RequireTenantRole(model.RoleAdmin))
	themes.DELETE("", themeHandler.Delete, middleware.RequireTenantRole(model.RoleAdmin))

	// Current user profile
	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware)
	users.GET("/me", userHandler.Me)
	users.PATCH("/me", userHandler.UpdateMe)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
