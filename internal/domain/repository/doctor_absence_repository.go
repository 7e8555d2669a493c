package repository

import (
	"time"

	"pms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorAbsenceRepository interface {
	Create(db *gorm.DB, absence *entity.DoctorAbsence) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorAbsence, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAbsence, error)
	// FindActiveByDoctorID returns absences whose end_date has not yet
	// elapsed relative to notBefore, for availability computation.
	FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID, notBefore time.Time) ([]entity.DoctorAbsence, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
