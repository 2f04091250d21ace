package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/goswift/booking-backend/internal/config"
	"github.com/goswift/booking-backend/internal/database"
	"github.com/goswift/booking-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// Runs the nightly housekeeping job once: expired login attempts and
// audit events older than AUDIT_RETENTION_DAYS are deleted.
func main() {
	var retentionDays int
	flag.IntVar(&retentionDays, "retention-days", 0, "audit retention in days (overrides AUDIT_RETENTION_DAYS)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	if retentionDays > 0 {
		cfg.Security.AuditRetention = time.Duration(retentionDays) * 24 * time.Hour
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.NewConnection(ctx, cfg.Database, cfg.AWS)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := database.NewStore(db)
	cronService := services.NewCronService(
		services.NewAuditService(store, logger),
		services.NewRateLimitService(store, cfg.Security),
		cfg.Security,
		logger,
	)

	logger.WithField("audit_retention", cfg.Security.AuditRetention.String()).Info("Running cleanup")
	if err := cronService.RunCleanupNow(ctx); err != nil {
		logger.Fatalf("Cleanup failed: %v", err)
	}
	logger.Info("Cleanup completed")
}
