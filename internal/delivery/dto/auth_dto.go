package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RegisterPatientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required,min=2"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address     string `json:"address" validate:"omitempty"`
}

type RegisterDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required,min=2"`
	LicenseNumber  string `json:"license_number" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Biography      string `json:"biography" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	FullName       string                  `json:"full_name"`
	Role           string                  `json:"role"`
	DoctorProfile  *DoctorProfileResponse  `json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfileResponse `json:"patient_profile,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// PatientProfileResponse represents patient profile data in responses
type PatientProfileResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	DateOfBirth string    `json:"date_of_birth"`
	Gender      string    `json:"gender"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Address     string    `json:"address,omitempty"`
}
