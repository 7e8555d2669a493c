package handler

import (
	"encoding/json"
	"net/http"

	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/delivery/http/middleware"
	"pms-backend/internal/usecase"
	"pms-backend/pkg/response"
	"pms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.CreateRecord(r.Context(), doctorID, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid record date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

// ListPatientRecords lets a doctor review one patient's file.
func (h *MedicalRecordHandler) ListPatientRecords(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	records, err := h.recordUsecase.ListForPatient(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}

// ListMyRecords is the patient's read-only view of their own file.
func (h *MedicalRecordHandler) ListMyRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	records, err := h.recordUsecase.ListOwn(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
