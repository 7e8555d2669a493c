package converter

import (
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to its DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.DoctorProfileResponse{
		UserID:         profile.UserID,
		LicenseNumber:  profile.LicenseNumber,
		Specialization: profile.Specialization,
		PhoneNumber:    profile.PhoneNumber,
		Biography:      profile.Biography,
	}
}

// DoctorToResponse converts a DoctorProfile with its preloaded User into a
// directory entry.
func DoctorToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}
	return &dto.DoctorResponse{
		ID:             profile.UserID,
		Email:          profile.User.Email,
		FullName:       profile.User.FullName,
		LicenseNumber:  profile.LicenseNumber,
		Specialization: profile.Specialization,
		PhoneNumber:    profile.PhoneNumber,
		Biography:      profile.Biography,
		IsActive:       profile.User.IsActive,
		CreatedAt:      profile.User.CreatedAt,
		UpdatedAt:      profile.User.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of DoctorProfile entities
func DoctorsToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorToResponse(&profiles[i])
	}
	return responses
}
