package services

import (
	"context"
	"fmt"
	"time"

	"github.com/goswift/booking-backend/internal/config"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CronService runs periodic housekeeping jobs
type CronService struct {
	cron        *cron.Cron
	auditSvc    *AuditService
	rateLimiter *RateLimitService
	cfg         config.SecurityConfig
	logger      *logrus.Logger
}

// NewCronService creates a new CronService
func NewCronService(auditSvc *AuditService, rateLimiter *RateLimitService, cfg config.SecurityConfig, logger *logrus.Logger) *CronService {
	return &CronService{
		cron:        cron.New(cron.WithSeconds()),
		auditSvc:    auditSvc,
		rateLimiter: rateLimiter,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start schedules all jobs and starts the scheduler
func (s *CronService) Start() error {
	// Cron format: second minute hour day month weekday
	if _, err := s.cron.AddFunc(s.cfg.CleanupSchedule, s.cleanupJob); err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}
	s.logger.WithField("schedule", s.cfg.CleanupSchedule).Info("Scheduled: audit log and login attempt cleanup")

	s.cron.Start()
	s.logger.Info("Cron service started")
	return nil
}

// Stop waits for running jobs and stops the scheduler
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Cron service stopped")
}

func (s *CronService) cleanupJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.RunCleanupNow(ctx); err != nil {
		s.logger.WithError(err).Error("[CRON] Cleanup failed")
	}
}

// RunCleanupNow removes expired login attempts and audit events past retention
func (s *CronService) RunCleanupNow(ctx context.Context) error {
	start := time.Now()

	attempts, err := s.rateLimiter.CleanupExpiredRateLimits(ctx)
	if err != nil {
		return err
	}

	events, err := s.auditSvc.CleanupOldAuditLogs(ctx, s.cfg.AuditRetention)
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"login_attempts": attempts,
		"audit_events":   events,
		"duration_ms":    time.Since(start).Milliseconds(),
	}).Info("[CRON] Cleanup completed")
	return nil
}

// JobStatus reports the scheduled jobs and their next run
func (s *CronService) JobStatus() map[string]interface{} {
	entries := s.cron.Entries()

	jobs := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		jobs = append(jobs, map[string]interface{}{
			"id":       entry.ID,
			"next_run": entry.Next,
			"prev_run": entry.Prev,
		})
	}

	return map[string]interface{}{
		"running":   len(entries) > 0,
		"job_count": len(entries),
		"jobs":      jobs,
	}
}
