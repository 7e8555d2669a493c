package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAbsenceRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type AbsenceResponse struct {
	ID        int       `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AbsenceListResponse struct {
	Absences []AbsenceResponse `json:"absences"`
	Total    int               `json:"total"`
}
