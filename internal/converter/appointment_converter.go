package converter

import (
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO,
// including doctor/patient names when the relations were preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		DoctorID:  appointment.DoctorID,
		PatientID: appointment.PatientID,
		Date:      appointment.AppointmentDate.Format("2006-01-02"),
		StartTime: appointment.StartTime,
		EndTime:   appointment.EndTime,
		Status:    string(appointment.Status),
		Reason:    appointment.Reason,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Doctor.UserID != uuid.Nil {
		response.DoctorName = appointment.Doctor.User.FullName
	}
	if appointment.Patient.UserID != uuid.Nil {
		response.PatientName = appointment.Patient.User.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
