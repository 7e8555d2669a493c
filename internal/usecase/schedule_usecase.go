package usecase

import (
	"context"
	"errors"

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
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleNotOwned = errors.New("schedule does not belong to this doctor")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	ListSchedules(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	UpdateSchedule(ctx context.Context, doctorID uuid.UUID, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, doctorID uuid.UUID, scheduleID int) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

func (u *scheduleUsecase) CreateSchedule(ctx context.Context, doctorID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	// NewWindow enforces valid weekday and start < end.
	if _, err := availability.NewWindow(*req.DayOfWeek, req.StartTime, req.EndTime); err != nil {
		return nil, ErrInvalidTimeRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule := &entity.DoctorSchedule{
		DoctorID:  doctorID,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(tx, &doctorID, entity.AuditActionScheduleCreate, entity.JSON{
		"schedule_id": schedule.ID,
		"day_of_week": schedule.DayOfWeek,
		"start_time":  schedule.StartTime,
		"end_time":    schedule.EndTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) ListSchedules(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) UpdateSchedule(ctx context.Context, doctorID uuid.UUID, scheduleID int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	if schedule.DoctorID != doctorID {
		return nil, ErrScheduleNotOwned
	}

	old := *schedule
	if req.DayOfWeek != nil {
		schedule.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != "" {
		schedule.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		schedule.EndTime = req.EndTime
	}

	// Re-validate the merged window before persisting.
	if _, err := availability.NewWindow(schedule.DayOfWeek, schedule.StartTime, schedule.EndTime); err != nil {
		return nil, ErrInvalidTimeRange
	}

	if err := u.scheduleRepo.Update(tx, schedule); err != nil {
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogChange(tx, &doctorID, entity.AuditActionScheduleUpdate,
		"doctor_schedule", schedule.DoctorID.String(), old, schedule); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, doctorID uuid.UUID, scheduleID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}
	if schedule.DoctorID != doctorID {
		return ErrScheduleNotOwned
	}

	affected, err := u.scheduleRepo.Delete(tx, scheduleID)
	if err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	if err := u.auditService.Log(tx, &doctorID, entity.AuditActionScheduleDelete, entity.JSON{
		"schedule_id": scheduleID,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
