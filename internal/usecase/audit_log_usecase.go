package usecase

import (
	"context"

	"pms-backend/internal/converter"
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error)
}

type auditLogUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditLogUsecase {
	return &auditLogUsecase{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, limit, offset int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	logs, total, err := u.auditRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: total,
	}, nil
}
