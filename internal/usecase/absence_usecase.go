package usecase

import (
	"context"
	"errors"
	"time"

	"pms-backend/internal/converter"
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/availability"
	"pms-backend/internal/domain/entity"
	"pms-backend/internal/domain/repository"
	"pms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAbsenceNotFound  = errors.New("absence not found")
	ErrAbsenceNotOwned  = errors.New("absence does not belong to this doctor")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
)

type AbsenceUsecase interface {
	CreateAbsence(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAbsenceRequest) (*dto.AbsenceResponse, error)
	ListAbsences(ctx context.Context, doctorID uuid.UUID) (*dto.AbsenceListResponse, error)
	DeleteAbsence(ctx context.Context, doctorID uuid.UUID, absenceID int) error
}

type absenceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	absenceRepo  repository.DoctorAbsenceRepository
	auditService service.AuditService
}

func NewAbsenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	absenceRepo repository.DoctorAbsenceRepository,
	auditService service.AuditService,
) AbsenceUsecase {
	return &absenceUsecase{
		db:           db,
		log:          log,
		absenceRepo:  absenceRepo,
		auditService: auditService,
	}
}

func (u *absenceUsecase) CreateAbsence(ctx context.Context, doctorID uuid.UUID, req *dto.CreateAbsenceRequest) (*dto.AbsenceResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	// Both bounds inclusive, so a single-day absence has start == end.
	if _, err := availability.NewDateRange(start, end); err != nil {
		return nil, ErrInvalidDateRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	absence := &entity.DoctorAbsence{
		DoctorID:  doctorID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}

	if err := u.absenceRepo.Create(tx, absence); err != nil {
		u.log.Warnf("Failed to create absence: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(tx, &doctorID, entity.AuditActionAbsenceCreate, entity.JSON{
		"absence_id": absence.ID,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AbsenceToResponse(absence), nil
}

func (u *absenceUsecase) ListAbsences(ctx context.Context, doctorID uuid.UUID) (*dto.AbsenceListResponse, error) {
	absences, err := u.absenceRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list absences: %+v", err)
		return nil, err
	}

	return &dto.AbsenceListResponse{
		Absences: converter.AbsencesToResponses(absences),
		Total:    len(absences),
	}, nil
}

func (u *absenceUsecase) DeleteAbsence(ctx context.Context, doctorID uuid.UUID, absenceID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	absence, err := u.absenceRepo.FindByID(tx, absenceID)
	if err != nil {
		u.log.Warnf("Failed to find absence: %+v", err)
		return err
	}
	if absence == nil {
		return ErrAbsenceNotFound
	}
	if absence.DoctorID != doctorID {
		return ErrAbsenceNotOwned
	}

	affected, err := u.absenceRepo.Delete(tx, absenceID)
	if err != nil {
		u.log.Warnf("Failed to delete absence: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAbsenceNotFound
	}

	if err := u.auditService.Log(tx, &doctorID, entity.AuditActionAbsenceDelete, entity.JSON{
		"absence_id": absenceID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
