package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/goswift/booking-backend/internal/config"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/handlers"
	"github.com/goswift/booking-backend/internal/middleware"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/goswift/booking-backend/internal/services"
	"github.com/goswift/booking-backend/internal/storage"
	"github.com/goswift/booking-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting GoSwift booking backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	// Initialize database connection
	logger.WithFields(logrus.Fields{
		"driver":   cfg.Database.Driver,
		"iam_auth": cfg.Database.IAMAuth,
	}).Info("Connecting to database...")
	db, err := database.NewConnection(startCtx, cfg.Database, cfg.AWS)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	store := database.NewStore(db)

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authService := services.NewAuthService(store, jwtService, logger)
	agentService := services.NewAgentService(store, logger)
	adminService := services.NewAdminService(store, logger)
	auditService := services.NewAuditService(store, logger)
	rateLimitService := services.NewRateLimitService(store, cfg.Security)

	var reportStore services.ReportStore
	s3Store, err := storage.NewS3ReportStoreFromConfig(startCtx, cfg.AWS, cfg.Reports)
	if err != nil {
		logger.Fatalf("Failed to initialize report storage: %v", err)
	}
	if s3Store != nil {
		reportStore = s3Store
		logger.WithField("bucket", cfg.Reports.Bucket).Info("Report export enabled")
	} else {
		logger.Info("REPORTS_BUCKET not set, report export disabled")
	}
	reportService := services.NewReportService(adminService, reportStore, cfg.Reports.Prefix, logger)

	// Start housekeeping jobs
	cronService := services.NewCronService(auditService, rateLimitService, cfg.Security, logger)
	if err := cronService.Start(); err != nil {
		logger.Fatalf("Failed to start cron service: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, rateLimitService, auditService, logger)
	agentHandler := handlers.NewAgentHandler(agentService, logger)
	adminHandler := handlers.NewAdminHandler(adminService, reportService, auditService, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(store, cronService))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		agent := v1.Group("/agent")
		agent.Use(middleware.AuthMiddleware(jwtService))
		agent.Use(middleware.RequireRole(models.RoleAgent))
		{
			agent.GET("/buses", agentHandler.ListBuses)
			agent.POST("/buses", agentHandler.CreateBus)
			agent.PUT("/buses/:id", agentHandler.UpdateBus)
			agent.DELETE("/buses/:id", agentHandler.DeleteBus)

			agent.GET("/schedules", agentHandler.ListSchedules)
			agent.POST("/schedules", agentHandler.CreateSchedule)
			agent.PUT("/schedules/:id", agentHandler.UpdateSchedule)
			agent.DELETE("/schedules/:id", agentHandler.DeleteSchedule)

			agent.GET("/bookings", agentHandler.ListBookings)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtService))
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)
			admin.GET("/users/:id/audit", adminHandler.UserAuditLog)

			admin.GET("/cities", adminHandler.ListCities)
			admin.POST("/cities", adminHandler.CreateCity)

			admin.GET("/agencies", adminHandler.ListAgencies)
			admin.GET("/agencies/:id/buses", adminHandler.ListAgencyBuses)

			admin.GET("/bookings", adminHandler.ListBookings)
			admin.GET("/bookings/search", adminHandler.SearchBookings)
			admin.GET("/bookings/report", adminHandler.BookingReport)
			admin.POST("/bookings/report/export", adminHandler.ExportBookingReport)

			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/config", adminHandler.GetConfig)
			admin.PUT("/config", adminHandler.UpdateConfig)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	cronService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(store *database.Store, cronService *services.CronService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
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
			"jobs":      cronService.JobStatus(),
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
