package service

import (
	"time"

	"pms-backend/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RetentionService prunes aged audit log rows on a nightly schedule so the
// audit table does not grow without bound.
type RetentionService struct {
	db            *gorm.DB
	log           *logrus.Logger
	auditRepo     repository.AuditLogRepository
	retentionDays int
	cron          *cron.Cron
}

func NewRetentionService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository, retentionDays int) *RetentionService {
	return &RetentionService{
		db:            db,
		log:           log,
		auditRepo:     auditRepo,
		retentionDays: retentionDays,
		cron:          cron.New(),
	}
}

// Start registers the nightly purge and launches the scheduler.
func (s *RetentionService) Start() error {
	if _, err := s.cron.AddFunc("0 3 * * *", s.purge); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Audit retention scheduler started (keeping %d days)", s.retentionDays)
	return nil
}

// Stop halts the scheduler, waiting for an in-flight purge to finish.
func (s *RetentionService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *RetentionService) purge() {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	deleted, err := s.auditRepo.DeleteOlderThan(s.db, cutoff)
	if err != nil {
		s.log.Warnf("Audit retention purge failed: %+v", err)
		return
	}
	if deleted > 0 {
		s.log.Infof("Audit retention purge removed %d entries older than %s", deleted, cutoff.Format("2006-01-02"))
	}
}
