package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string    `json:"start_time" validate:"required,datetime=15:04"`
	Reason    string    `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
