package usecase

import (
	"context"
	"errors"
	"time"

	"pms-backend/internal/converter"
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"
	"pms-backend/internal/domain/repository"
	"pms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type MedicalRecordUsecase interface {
	// CreateRecord lets a doctor append a consultation entry to a
	// patient's health file.
	CreateRecord(ctx context.Context, doctorID, patientID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	// ListForPatient is used by doctors reviewing a patient's file.
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error)
	// ListOwn is the patient's read-only view of their own file.
	ListOwn(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	patientRepo  repository.PatientProfileRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) CreateRecord(ctx context.Context, doctorID, patientID uuid.UUID, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	recordDate, err := time.Parse("2006-01-02", req.RecordDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := &entity.MedicalRecord{
		PatientID:     patientID,
		DoctorID:      doctorID,
		RecordDate:    recordDate,
		BloodPressure: req.BloodPressure,
		HeartRate:     req.HeartRate,
		Temperature:   req.Temperature,
		Weight:        req.Weight,
		Notes:         req.Notes,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(tx, &doctorID, entity.AuditActionRecordCreate, entity.JSON{
		"record_id":  record.ID.String(),
		"patient_id": patientID.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByUserID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	records, err := u.recordRepo.FindByPatientID(db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *medicalRecordUsecase) ListOwn(ctx context.Context, patientID uuid.UUID) (*dto.MedicalRecordListResponse, error) {
	records, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	return &dto.MedicalRecordListResponse{
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}
