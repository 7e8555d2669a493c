package usecase

import (
	"context"
	"time"

	"pms-backend/config"
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/availability"
	"pms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	// GetAvailableDays lists the bookable calendar days for one doctor
	// within the booking horizon, starting today.
	GetAvailableDays(ctx context.Context, doctorID uuid.UUID) (*dto.AvailableDaysResponse, error)
	// GetTimeSlots lists the candidate slots on one calendar day with
	// their availability state.
	GetTimeSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.TimeSlotListResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	booking         config.BookingConfig
	doctorRepo      repository.DoctorProfileRepository
	scheduleRepo    repository.DoctorScheduleRepository
	absenceRepo     repository.DoctorAbsenceRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	booking config.BookingConfig,
	doctorRepo repository.DoctorProfileRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	absenceRepo repository.DoctorAbsenceRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		booking:         booking,
		doctorRepo:      doctorRepo,
		scheduleRepo:    scheduleRepo,
		absenceRepo:     absenceRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *availabilityUsecase) GetAvailableDays(ctx context.Context, doctorID uuid.UUID) (*dto.AvailableDaysResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	now := time.Now()

	windows, err := loadWindows(db, u.log, u.scheduleRepo, doctorID)
	if err != nil {
		return nil, err
	}

	ranges, err := loadAbsenceRanges(db, u.log, u.absenceRepo, doctorID, now)
	if err != nil {
		return nil, err
	}

	days := availability.Days(windows, ranges, now, u.booking.HorizonDays)

	formatted := make([]string, 0, len(days))
	for _, d := range days {
		formatted = append(formatted, d.Format("2006-01-02"))
	}

	return &dto.AvailableDaysResponse{
		DoctorID: doctorID.String(),
		Days:     formatted,
		Total:    len(formatted),
	}, nil
}

func (u *availabilityUsecase) GetTimeSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.TimeSlotListResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots, absent, err := computeDaySlots(db, u.log, u.scheduleRepo, u.absenceRepo, u.appointmentRepo, doctorID, day, u.booking.SlotWidth)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TimeSlotResponse, 0, len(slots))
	for _, s := range slots {
		state := s.State
		if absent {
			state = availability.SlotUnavailable
		}
		responses = append(responses, dto.TimeSlotResponse{
			Time:      s.Start.String(),
			Available: state == availability.SlotAvailable,
			State:     string(state),
		})
	}

	return &dto.TimeSlotListResponse{
		DoctorID: doctorID.String(),
		Date:     date,
		Slots:    responses,
		Total:    len(responses),
	}, nil
}

// loadWindows converts schedule rows into windows, skipping malformed rows
// so one bad row cannot take the whole doctor offline.
func loadWindows(db *gorm.DB, log *logrus.Logger, scheduleRepo repository.DoctorScheduleRepository, doctorID uuid.UUID) ([]availability.Window, error) {
	schedules, err := scheduleRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		log.Warnf("Failed to load schedules: %+v", err)
		return nil, err
	}

	windows := make([]availability.Window, 0, len(schedules))
	for _, s := range schedules {
		w, err := availability.NewWindow(s.DayOfWeek, normalizeTime(s.StartTime), normalizeTime(s.EndTime))
		if err != nil {
			log.Warnf("Skipping malformed schedule row %d: %+v", s.ID, err)
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func loadAbsenceRanges(db *gorm.DB, log *logrus.Logger, absenceRepo repository.DoctorAbsenceRepository, doctorID uuid.UUID, notBefore time.Time) ([]availability.DateRange, error) {
	absences, err := absenceRepo.FindActiveByDoctorID(db, doctorID, notBefore)
	if err != nil {
		log.Warnf("Failed to load absences: %+v", err)
		return nil, err
	}

	ranges := make([]availability.DateRange, 0, len(absences))
	for _, a := range absences {
		r, err := availability.NewDateRange(a.StartDate, a.EndDate)
		if err != nil {
			log.Warnf("Skipping malformed absence row %d: %+v", a.ID, err)
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// computeDaySlots builds the slots for one doctor on one calendar day from
// live schedule, absence and appointment rows. The absent flag reports
// whether an absence covers the day; slots are still generated so the
// caller can surface them as unavailable.
func computeDaySlots(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	absenceRepo repository.DoctorAbsenceRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorID uuid.UUID,
	day time.Time,
	slotWidth time.Duration,
) ([]availability.Slot, bool, error) {
	windows, err := loadWindows(db, log, scheduleRepo, doctorID)
	if err != nil {
		return nil, false, err
	}

	ranges, err := loadAbsenceRanges(db, log, absenceRepo, doctorID, day)
	if err != nil {
		return nil, false, err
	}

	absent := false
	for _, r := range ranges {
		if r.Contains(day) {
			absent = true
			break
		}
	}

	appointments, err := appointmentRepo.FindScheduledForDay(db, doctorID, day)
	if err != nil {
		log.Warnf("Failed to load appointments: %+v", err)
		return nil, false, err
	}

	booked := make([]availability.Interval, 0, len(appointments))
	for _, a := range appointments {
		start, err := availability.ParseClock(normalizeTime(a.StartTime))
		if err != nil {
			log.Warnf("Skipping appointment %s with malformed start time: %+v", a.ID, err)
			continue
		}
		end, err := availability.ParseClock(normalizeTime(a.EndTime))
		if err != nil {
			log.Warnf("Skipping appointment %s with malformed end time: %+v", a.ID, err)
			continue
		}
		booked = append(booked, availability.Interval{Start: start, End: end})
	}

	slots := availability.SlotsForDay(windows, day.Weekday(), booked, slotWidth)
	return slots, absent, nil
}

// normalizeTime trims the seconds a postgres time column carries so stored
// values parse as "HH:MM".
func normalizeTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
