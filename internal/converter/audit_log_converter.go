package converter

import (
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to its DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	response := &dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  map[string]interface{}(log.Metadata),
		CreatedAt: log.CreatedAt,
	}

	if log.User != nil {
		response.UserEmail = log.User.Email
	}

	return response
}

// AuditLogsToResponses converts a slice of AuditLog entities
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
