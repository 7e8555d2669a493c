package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateDoctorRequest struct {
	FullName       string `json:"full_name" validate:"omitempty,min=2"`
	Specialization string `json:"specialization" validate:"omitempty"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Biography      string `json:"biography" validate:"omitempty"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

// DoctorProfileResponse represents doctor profile data in responses
type DoctorProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Biography      string    `json:"biography,omitempty"`
}

// DoctorResponse represents a doctor user with profile data
type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	LicenseNumber  string    `json:"license_number"`
	Specialization string    `json:"specialization"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Biography      string    `json:"biography,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
