package converter

import (
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// MedicalRecordToResponse converts a MedicalRecord entity to its DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		DoctorID:      record.DoctorID,
		RecordDate:    record.RecordDate.Format("2006-01-02"),
		BloodPressure: record.BloodPressure,
		HeartRate:     record.HeartRate,
		Temperature:   record.Temperature,
		Weight:        record.Weight,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}

	if record.Doctor.UserID != uuid.Nil {
		response.DoctorName = record.Doctor.User.FullName
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
