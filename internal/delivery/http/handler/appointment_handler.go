package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/delivery/http/middleware"
	"pms-backend/internal/domain/availability"
	"pms-backend/internal/domain/entity"
	"pms-backend/internal/usecase"
	"pms-backend/pkg/response"
	"pms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrSlotUnavailable):
			response.Conflict(w, "Slot is not available")
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrDateOutsideHorizon):
			response.Error(w, http.StatusBadRequest, "Date is outside the booking horizon", nil)
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// ListMyAppointments lists the caller's own appointments (patient view).
func (h *AppointmentHandler) ListMyAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListPatientAppointments(r.Context(), patientID, appointmentFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListDoctorAppointments lists the caller's agenda (doctor view).
func (h *AppointmentHandler) ListDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.ListDoctorAppointments(r.Context(), doctorID, appointmentFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), patientID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentFinalized:
			response.Conflict(w, "Appointment is no longer scheduled")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), doctorID, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentFinalized:
			response.Conflict(w, "Appointment is no longer scheduled")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func appointmentFilterFromQuery(r *http.Request) *entity.AppointmentFilter {
	return &entity.AppointmentFilter{
		Status:   entity.AppointmentStatus(r.URL.Query().Get("status")),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
	}
}
