package converter

import (
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"
)

// AbsenceToResponse converts a DoctorAbsence entity to AbsenceResponse DTO
func AbsenceToResponse(absence *entity.DoctorAbsence) *dto.AbsenceResponse {
	if absence == nil {
		return nil
	}
	return &dto.AbsenceResponse{
		ID:        absence.ID,
		DoctorID:  absence.DoctorID,
		StartDate: absence.StartDate.Format("2006-01-02"),
		EndDate:   absence.EndDate.Format("2006-01-02"),
		Reason:    absence.Reason,
		CreatedAt: absence.CreatedAt,
		UpdatedAt: absence.UpdatedAt,
	}
}

// AbsencesToResponses converts a slice of DoctorAbsence entities
func AbsencesToResponses(absences []entity.DoctorAbsence) []dto.AbsenceResponse {
	responses := make([]dto.AbsenceResponse, len(absences))
	for i := range absences {
		responses[i] = *AbsenceToResponse(&absences[i])
	}
	return responses
}
