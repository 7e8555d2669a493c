package converter

import (
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO, including the
// role-specific profile when loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}
	if user.PatientProfile != nil {
		response.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}

	return response
}

// PatientProfileToResponse converts a PatientProfile entity to its DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}
	return &dto.PatientProfileResponse{
		UserID:      profile.UserID,
		DateOfBirth: profile.DateOfBirth.Format("2006-01-02"),
		Gender:      profile.Gender,
		PhoneNumber: profile.PhoneNumber,
		Address:     profile.Address,
	}
}
