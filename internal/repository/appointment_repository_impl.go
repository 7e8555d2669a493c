package repository

import (
	"errors"
	"time"

	"pms-backend/internal/domain/entity"
	domainRepo "pms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := applyFilter(db.Where("patient_id = ?", patientID), filter).
		Preload("Doctor.User").
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := applyFilter(db.Where("doctor_id = ?", doctorID), filter).
		Preload("Patient.User").
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindScheduledForDay(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where(
		"doctor_id = ? AND appointment_date = ? AND status = ?",
		doctorID, date.Format("2006-01-02"), entity.AppointmentStatusScheduled,
	).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus transitions an appointment out of 'scheduled' only.
// Returns affected rows: 0 means the appointment was already completed or
// cancelled by a concurrent request.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, entity.AppointmentStatusScheduled).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func applyFilter(query *gorm.DB, filter *entity.AppointmentFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		query = query.Where("appointment_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("appointment_date <= ?", filter.DateTo)
	}
	return query
}
