package handler

import (
	"net/http"
	"strconv"

	"pms-backend/internal/usecase"
	"pms-backend/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListAuditLogs serves the admin audit trail, newest first, paged via
// limit and offset query params.
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), limit, offset)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
