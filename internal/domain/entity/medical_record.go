package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicalRecord is one consultation entry in a patient's health file,
// written by the treating doctor.
type MedicalRecord struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"doctor_id"`
	RecordDate    time.Time       `gorm:"type:date;not null;index" json:"record_date"`
	BloodPressure string          `gorm:"type:varchar(20)" json:"blood_pressure,omitempty"`
	HeartRate     int             `gorm:"default:0" json:"heart_rate,omitempty"`
	Temperature   decimal.Decimal `gorm:"type:decimal(4,1)" json:"temperature,omitempty"`
	Weight        decimal.Decimal `gorm:"type:decimal(5,2)" json:"weight,omitempty"`
	Notes         string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
