package repository

import (
	"time"

	"pms-backend/internal/domain/entity"
	domainRepo "pms-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.AuditLog, int64, error) {
	var logs []entity.AuditLog
	var total int64

	if err := db.Model(&entity.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *auditLogRepository) DeleteOlderThan(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Where("created_at < ?", cutoff).Delete(&entity.AuditLog{})
	return result.RowsAffected, result.Error
}
