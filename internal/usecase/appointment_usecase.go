package usecase

import (
	"context"
	"errors"
	"time"

	"pms-backend/config"
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
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to this user")
	ErrAppointmentFinalized = errors.New("appointment is no longer scheduled")
	ErrDateOutsideHorizon   = errors.New("date is outside the booking horizon")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListPatientAppointments(ctx context.Context, patientID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	ListDoctorAppointments(ctx context.Context, doctorID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	// CancelAppointment is patient-initiated; the slot opens up again.
	CancelAppointment(ctx context.Context, patientID, appointmentID uuid.UUID) error
	// UpdateStatus is doctor-initiated: complete or cancel a scheduled
	// appointment.
	UpdateStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	booking         config.BookingConfig
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	scheduleRepo    repository.DoctorScheduleRepository
	absenceRepo     repository.DoctorAbsenceRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	booking config.BookingConfig,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	absenceRepo repository.DoctorAbsenceRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		booking:         booking,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		scheduleRepo:    scheduleRepo,
		absenceRepo:     absenceRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, availability.ErrSlotUnavailable
	}

	if err := u.checkHorizon(day); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.User.IsActive {
		return nil, ErrDoctorNotFound
	}

	// Recompute availability from live rows at write time; what the
	// patient saw earlier may be stale.
	slots, absent, err := computeDaySlots(tx, u.log, u.scheduleRepo, u.absenceRepo, u.appointmentRepo, req.DoctorID, day, u.booking.SlotWidth)
	if err != nil {
		return nil, err
	}
	if absent {
		return nil, availability.ErrSlotUnavailable
	}
	if err := availability.ValidateBooking(slots, start); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       patientID,
		AppointmentDate: day,
		StartTime:       start.String(),
		EndTime:         start.Add(u.booking.SlotWidth).String(),
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		// A concurrent booking of the same slot trips the partial unique
		// index; the database is the final arbiter.
		if isDuplicateKeyError(err, "uniq_scheduled_slot") {
			return nil, availability.ErrSlotUnavailable
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(tx, &patientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      req.DoctorID.String(),
		"date":           req.Date,
		"start_time":     appointment.StartTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListPatientAppointments(ctx context.Context, patientID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID, filter)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListDoctorAppointments(ctx context.Context, doctorID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID, filter)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, patientID, appointmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return ErrAppointmentNotOwned
	}
	if !appointment.IsScheduled() {
		return ErrAppointmentFinalized
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, entity.AppointmentStatusCancelled)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	if affected == 0 {
		// Lost a race with the doctor finalizing the appointment.
		return ErrAppointmentFinalized
	}

	if err := u.auditService.Log(tx, &patientID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": appointmentID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, doctorID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotOwned
	}
	if !appointment.IsScheduled() {
		return nil, ErrAppointmentFinalized
	}

	affected, err := u.appointmentRepo.UpdateStatus(tx, appointmentID, status)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentFinalized
	}

	action := entity.AuditActionAppointmentComplete
	if status == entity.AppointmentStatusCancelled {
		action = entity.AuditActionAppointmentCancel
	}
	if err := u.auditService.LogChange(tx, &doctorID, action,
		"appointment", appointmentID.String(), appointment.Status, status); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Status = status
	return converter.AppointmentToResponse(appointment), nil
}

// checkHorizon rejects dates in the past or beyond the rolling booking
// window shown to patients.
func (u *appointmentUsecase) checkHorizon(day time.Time) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	if target.Before(today) {
		return ErrDateOutsideHorizon
	}
	if target.After(today.AddDate(0, 0, u.booking.HorizonDays-1)) {
		return ErrDateOutsideHorizon
	}
	return nil
}
