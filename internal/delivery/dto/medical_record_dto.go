package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicalRecordRequest struct {
	RecordDate    string          `json:"record_date" validate:"required,datetime=2006-01-02"`
	BloodPressure string          `json:"blood_pressure" validate:"omitempty,max=20"`
	HeartRate     int             `json:"heart_rate" validate:"omitempty,gte=0,lte=300"`
	Temperature   decimal.Decimal `json:"temperature" validate:"omitempty"`
	Weight        decimal.Decimal `json:"weight" validate:"omitempty"`
	Notes         string          `json:"notes" validate:"omitempty"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            uuid.UUID       `json:"id"`
	PatientID     uuid.UUID       `json:"patient_id"`
	DoctorID      uuid.UUID       `json:"doctor_id"`
	DoctorName    string          `json:"doctor_name,omitempty"`
	RecordDate    string          `json:"record_date"`
	BloodPressure string          `json:"blood_pressure,omitempty"`
	HeartRate     int             `json:"heart_rate,omitempty"`
	Temperature   decimal.Decimal `json:"temperature,omitempty"`
	Weight        decimal.Decimal `json:"weight,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
