package repository

import (
	"time"

	"pms-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error)
	DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error)
}
