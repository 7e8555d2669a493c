package handler

import (
	"net/http"

	"pms-backend/internal/usecase"
	"pms-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AvailabilityHandler serves the patient-facing booking calendar: which
// days a doctor can be booked and which slots remain on a chosen day.
type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

func (h *AvailabilityHandler) GetAvailableDays(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	days, err := h.availabilityUsecase.GetAvailableDays(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get available days")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available days retrieved successfully", days)
}

func (h *AvailabilityHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	slots, err := h.availabilityUsecase.GetTimeSlots(r.Context(), doctorID, date)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get time slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}
