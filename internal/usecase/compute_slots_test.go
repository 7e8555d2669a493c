package usecase

import (
	"io"
	"testing"
	"time"

	"pms-backend/internal/domain/availability"
	"pms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// In-memory repositories: the gorm handle is ignored, rows come from the
// struct fields.

type fakeScheduleRepo struct {
	rows []entity.DoctorSchedule
}

func (f *fakeScheduleRepo) Create(db *gorm.DB, schedule *entity.DoctorSchedule) error { return nil }
func (f *fakeScheduleRepo) FindByID(db *gorm.DB, id int) (*entity.DoctorSchedule, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error) {
	return f.rows, nil
}
func (f *fakeScheduleRepo) Update(db *gorm.DB, schedule *entity.DoctorSchedule) error { return nil }
func (f *fakeScheduleRepo) Delete(db *gorm.DB, id int) (int64, error)                 { return 0, nil }

type fakeAbsenceRepo struct {
	rows []entity.DoctorAbsence
}

func (f *fakeAbsenceRepo) Create(db *gorm.DB, absence *entity.DoctorAbsence) error { return nil }
func (f *fakeAbsenceRepo) FindByID(db *gorm.DB, id int) (*entity.DoctorAbsence, error) {
	return nil, nil
}
func (f *fakeAbsenceRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAbsence, error) {
	return f.rows, nil
}
func (f *fakeAbsenceRepo) FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID, notBefore time.Time) ([]entity.DoctorAbsence, error) {
	return f.rows, nil
}
func (f *fakeAbsenceRepo) Delete(db *gorm.DB, id int) (int64, error) { return 0, nil }

type fakeAppointmentRepo struct {
	rows []entity.Appointment
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error { return nil }
func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return nil, nil
}

// FindScheduledForDay applies the same status predicate as the real
// implementation: only scheduled appointments block slots.
func (f *fakeAppointmentRepo) FindScheduledForDay(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var scheduled []entity.Appointment
	for _, a := range f.rows {
		if a.IsScheduled() {
			scheduled = append(scheduled, a)
		}
	}
	return scheduled, nil
}
func (f *fakeAppointmentRepo) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	return 0, nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// A malformed schedule or absence row is skipped; the remaining valid rows
// still produce the day's slots.
func TestComputeDaySlotsSkipsMalformedRows(t *testing.T) {
	doctorID := uuid.New()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	scheduleRepo := &fakeScheduleRepo{rows: []entity.DoctorSchedule{
		{ID: 1, DoctorID: doctorID, DayOfWeek: 1, StartTime: "banana", EndTime: "12:00"},
		{ID: 2, DoctorID: doctorID, DayOfWeek: 9, StartTime: "09:00", EndTime: "12:00"},
		{ID: 3, DoctorID: doctorID, DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00"},
	}}
	absenceRepo := &fakeAbsenceRepo{rows: []entity.DoctorAbsence{
		// Inverted range, must be skipped rather than poisoning the day.
		{ID: 1, DoctorID: doctorID, StartDate: monday.AddDate(0, 0, 5), EndDate: monday.AddDate(0, 0, 2)},
	}}
	appointmentRepo := &fakeAppointmentRepo{}

	slots, absent, err := computeDaySlots(nil, quietLogger(), scheduleRepo, absenceRepo, appointmentRepo, doctorID, monday, 30*time.Minute)
	if err != nil {
		t.Fatalf("computeDaySlots: %v", err)
	}
	if absent {
		t.Fatal("expected no absence on the requested day")
	}

	// Only the valid 09:00-11:00 window contributes: 4 half-hour slots.
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots from the valid window, got %d", len(slots))
	}
	if got := slots[0].Start.String(); got != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", got)
	}
	for _, s := range slots {
		if !s.Available() {
			t.Errorf("expected slot %s to be available", s.Start)
		}
	}
}

// A cancelled appointment frees its slot; only scheduled ones block.
func TestComputeDaySlotsCancelledDoesNotBlock(t *testing.T) {
	doctorID := uuid.New()
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	scheduleRepo := &fakeScheduleRepo{rows: []entity.DoctorSchedule{
		{ID: 1, DoctorID: doctorID, DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00"},
	}}
	appointmentRepo := &fakeAppointmentRepo{rows: []entity.Appointment{
		{DoctorID: doctorID, AppointmentDate: monday, StartTime: "09:00", EndTime: "09:30", Status: entity.AppointmentStatusCancelled},
		{DoctorID: doctorID, AppointmentDate: monday, StartTime: "10:00", EndTime: "10:30", Status: entity.AppointmentStatusScheduled},
		{DoctorID: doctorID, AppointmentDate: monday, StartTime: "10:30", EndTime: "11:00", Status: entity.AppointmentStatusCompleted},
	}}

	slots, _, err := computeDaySlots(nil, quietLogger(), scheduleRepo, &fakeAbsenceRepo{}, appointmentRepo, doctorID, monday, 30*time.Minute)
	if err != nil {
		t.Fatalf("computeDaySlots: %v", err)
	}

	states := make(map[string]availability.SlotState, len(slots))
	for _, s := range slots {
		states[s.Start.String()] = s.State
	}

	if states["09:00"] != availability.SlotAvailable {
		t.Errorf("cancelled appointment must not block 09:00, got %s", states["09:00"])
	}
	if states["10:00"] != availability.SlotBooked {
		t.Errorf("scheduled appointment must block 10:00, got %s", states["10:00"])
	}
	if states["10:30"] != availability.SlotAvailable {
		t.Errorf("completed appointment must not block 10:30, got %s", states["10:30"])
	}
}
