package converter

import (
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"
)

// ScheduleToResponse converts a DoctorSchedule entity to ScheduleResponse DTO
func ScheduleToResponse(schedule *entity.DoctorSchedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}
	return &dto.ScheduleResponse{
		ID:        schedule.ID,
		DoctorID:  schedule.DoctorID,
		DayOfWeek: schedule.DayOfWeek,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
	}
}

// SchedulesToResponses converts a slice of DoctorSchedule entities
func SchedulesToResponses(schedules []entity.DoctorSchedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}
