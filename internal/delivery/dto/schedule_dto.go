package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"` // 0=Sunday .. 6=Saturday
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

type UpdateScheduleRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
}

// Response DTOs

type ScheduleResponse struct {
	ID        int       `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
