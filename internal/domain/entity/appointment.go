package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked consultation slot. Only scheduled
// appointments block availability; completed and cancelled ones do not.
// A partial unique index on (doctor_id, appointment_date, start_time)
// WHERE status = 'scheduled' arbitrates concurrent bookings of one slot.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	StartTime       string            `gorm:"type:time;not null" json:"start_time"`
	EndTime         string            `gorm:"type:time;not null" json:"end_time"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment still blocks its slot
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment was cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Complete marks the appointment as completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel marks the appointment as cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
