package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benchtrack/allocation-backend/internal/config"
	"github.com/benchtrack/allocation-backend/internal/database"
	"github.com/benchtrack/allocation-backend/internal/handlers"
	"github.com/benchtrack/allocation-backend/internal/middleware"
	"github.com/benchtrack/allocation-backend/internal/models"
	"github.com/benchtrack/allocation-backend/internal/services"
	"github.com/benchtrack/allocation-backend/pkg/jwt"
	"github.com/benchtrack/allocation-backend/pkg/validator"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.WithFields(logrus.Fields{
		"version":    version,
		"build_time": buildTime,
	}).Info("Starting BenchTrack allocation backend")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := database.NewConnection(cfg.Database, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Repositories
	employeeRepository := database.NewEmployeeRepository(db)
	allocationRepository := database.NewAllocationRepository(db)
	lookupRepository := database.NewLookupRepository(db)
	userRepository := database.NewUserRepository(db)
	txManager := database.NewTxManager(db)

	// Services
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	payloadValidator := validator.NewPayloadValidator()
	rules := services.NewEmployeeRules(employeeRepository, time.Now)
	queries := services.NewEmployeeQueries(employeeRepository, cfg.Pagination)
	engine := services.NewAllocationEngine(employeeRepository, allocationRepository, txManager, rules, payloadValidator)

	adminService := services.NewAdminService(queries, engine, employeeRepository, lookupRepository, logger)
	allocatorService := services.NewAllocatorService(queries, engine, lookupRepository, logger)
	managerService := services.NewManagerService(queries, allocationRepository)
	authService := services.NewAuthService(
		userRepository,
		services.NewPasswordService(cfg.Security.BcryptCost),
		jwtService,
		payloadValidator,
		logger,
	)
	logger.Info("Services initialized")

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Security.EnableRequestLog {
		router.Use(middleware.RequestLogger(logger))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     append(cfg.CORS.AllowedHeaders, middleware.RequestIDHeader),
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.CORS.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthCheckHandler(db))

	v1 := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(authService, logger)
		authHandler.RegisterRoutes(v1.Group("/auth"))

		authenticated := v1.Group("", middleware.AuthMiddleware(jwtService))

		authHandler.RegisterAdminRoutes(authenticated.Group("/auth", middleware.RequireRole(models.RoleAdmin)))

		handlers.NewAdminHandler(adminService, logger).
			RegisterRoutes(authenticated.Group("/admin", middleware.RequireRole(models.RoleAdmin)))
		handlers.NewAllocatorHandler(allocatorService, logger).
			RegisterRoutes(authenticated.Group("/allocator", middleware.RequireRole(models.RoleAllocator)))
		handlers.NewManagerHandler(managerService, logger).
			RegisterRoutes(authenticated.Group("/manager", middleware.RequireRole(models.RoleManager)))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// healthCheckHandler reports service and database health
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}

// allowsAnyOrigin reports whether origins contains the "*" wildcard
func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
