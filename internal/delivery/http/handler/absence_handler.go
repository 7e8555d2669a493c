package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/delivery/http/middleware"
	"pms-backend/internal/usecase"
	"pms-backend/pkg/response"
	"pms-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type AbsenceHandler struct {
	absenceUsecase usecase.AbsenceUsecase
	validator      *validator.CustomValidator
}

func NewAbsenceHandler(absenceUsecase usecase.AbsenceUsecase, validator *validator.CustomValidator) *AbsenceHandler {
	return &AbsenceHandler{
		absenceUsecase: absenceUsecase,
		validator:      validator,
	}
}

func (h *AbsenceHandler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	absence, err := h.absenceUsecase.CreateAbsence(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "End date must not be before start date", nil)
		default:
			response.InternalServerError(w, "Failed to create absence")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Absence created successfully", absence)
}

func (h *AbsenceHandler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	absences, err := h.absenceUsecase.ListAbsences(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list absences")
		return
	}

	response.Success(w, http.StatusOK, "Absences retrieved successfully", absences)
}

func (h *AbsenceHandler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	absenceID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid absence ID", nil)
		return
	}

	if err := h.absenceUsecase.DeleteAbsence(r.Context(), doctorID, absenceID); err != nil {
		switch err {
		case usecase.ErrAbsenceNotFound:
			response.NotFound(w, "Absence not found")
		case usecase.ErrAbsenceNotOwned:
			response.Forbidden(w, "Absence does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete absence")
		}
		return
	}

	response.Success(w, http.StatusOK, "Absence deleted successfully", nil)
}
