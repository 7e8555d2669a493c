package repository

import (
	"time"

	"pms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindScheduledForDay returns the scheduled appointments of one doctor
	// on one calendar date, ordered by start time. Completed and cancelled
	// appointments are excluded since they do not block slots.
	FindScheduledForDay(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	// UpdateStatus transitions status atomically and only out of
	// 'scheduled'; returns affected rows so callers can detect races.
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
}
