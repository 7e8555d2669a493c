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

// ScheduleHandler exposes the doctor's own weekly schedule management.
type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.CreateSchedule(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeRange:
			response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", schedule)
}

func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedules, err := h.scheduleUsecase.ListSchedules(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

func (h *ScheduleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	scheduleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.UpdateSchedule(r.Context(), doctorID, scheduleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrScheduleNotOwned:
			response.Forbidden(w, "Schedule does not belong to you")
		case usecase.ErrInvalidTimeRange:
			response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
		default:
			response.InternalServerError(w, "Failed to update schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", schedule)
}

func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	scheduleID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	if err := h.scheduleUsecase.DeleteSchedule(r.Context(), doctorID, scheduleID); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrScheduleNotOwned:
			response.Forbidden(w, "Schedule does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}
