package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrInvalidInput is returned when upstream rows carry malformed times
	// or inverted ranges. Callers should skip the offending row and log it;
	// one bad row must not block the rest of the computation.
	ErrInvalidInput = errors.New("invalid availability input")

	// ErrSlotUnavailable is returned when a booking targets a slot that is
	// already taken or outside the doctor's working hours.
	ErrSlotUnavailable = errors.New("slot is not available")
)

// Clock is a time of day in minutes since midnight. Schedule rows store
// times as "HH:MM" strings; converting once keeps the slot walk arithmetic.
type Clock int

// ParseClock parses a strict "HH:MM" time of day.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad time %q", ErrInvalidInput, s)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Add returns the clock advanced by d, rounded down to whole minutes.
func (c Clock) Add(d time.Duration) Clock {
	return c + Clock(d/time.Minute)
}

// Window is one recurring weekly availability window. A doctor may have
// several windows on the same weekday.
type Window struct {
	Day   time.Weekday
	Start Clock
	End   Clock
}

// NewWindow builds a Window from a schedule row, rejecting rows with an
// out-of-range weekday or a window that does not move forward in time.
func NewWindow(dayOfWeek int, start, end string) (Window, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return Window{}, fmt.Errorf("%w: day_of_week %d out of range", ErrInvalidInput, dayOfWeek)
	}
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	if e <= s {
		return Window{}, fmt.Errorf("%w: window %s-%s is empty or inverted", ErrInvalidInput, start, end)
	}
	return Window{Day: time.Weekday(dayOfWeek), Start: s, End: e}, nil
}

// DateRange is a closed range of calendar days during which a doctor is
// absent. Both bounds are inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: absence ends before it starts", ErrInvalidInput)
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether day falls inside the range, comparing calendar
// days only.
func (r DateRange) Contains(day time.Time) bool {
	day = dateOnly(day)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Interval is a booked appointment's [Start, End) span on a single day.
type Interval struct {
	Start Clock
	End   Clock
}

type SlotState string

const (
	SlotAvailable   SlotState = "available"
	SlotBooked      SlotState = "booked"
	SlotUnavailable SlotState = "unavailable"
)

// Slot is one fixed-width candidate appointment start within a working
// window. Derived per request, never persisted.
type Slot struct {
	Start Clock
	State SlotState
}

func (s Slot) Available() bool {
	return s.State == SlotAvailable
}

// Days returns the calendar days in [from, from+horizonDays) on which the
// doctor can be booked: the weekday has at least one window and no absence
// range covers the date. The result is ascending and deduplicated; an empty
// result simply means the doctor has no bookable days.
func Days(windows []Window, absences []DateRange, from time.Time, horizonDays int) []time.Time {
	var days []time.Time
	start := dateOnly(from)

	for i := 0; i < horizonDays; i++ {
		date := start.AddDate(0, 0, i)

		if !anyWindowOn(windows, date.Weekday()) {
			continue
		}
		if anyAbsenceCovers(absences, date) {
			continue
		}
		days = append(days, date)
	}

	return days
}

// SlotsForDay generates the slots for one weekday from the union of all
// windows matching that weekday, stepping by slotWidth. A slot is emitted
// only when it fits entirely inside its window; partial trailing slots are
// dropped. A slot is booked when it intersects any existing interval.
// No matching window yields an empty result, not an error.
func SlotsForDay(windows []Window, day time.Weekday, booked []Interval, slotWidth time.Duration) []Slot {
	width := Clock(slotWidth / time.Minute)
	if width <= 0 {
		return nil
	}

	seen := make(map[Clock]struct{})
	var slots []Slot

	for _, w := range windows {
		if w.Day != day {
			continue
		}
		for cur := w.Start; cur+width <= w.End; cur += width {
			if _, dup := seen[cur]; dup {
				continue
			}
			seen[cur] = struct{}{}

			state := SlotAvailable
			if intersectsAny(booked, cur, cur+width) {
				state = SlotBooked
			}
			slots = append(slots, Slot{Start: cur, State: state})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	return slots
}

// ValidateBooking checks that the requested start appears among the freshly
// computed slots and is still available. It must run again at write time:
// another booking may have landed since the slots were shown, and the
// storage layer's unique constraint stays the final arbiter.
func ValidateBooking(slots []Slot, start Clock) error {
	for _, s := range slots {
		if s.Start != start {
			continue
		}
		if !s.Available() {
			return fmt.Errorf("%w: %s is already booked", ErrSlotUnavailable, start)
		}
		return nil
	}
	return fmt.Errorf("%w: %s is outside working hours", ErrSlotUnavailable, start)
}

func anyWindowOn(windows []Window, day time.Weekday) bool {
	for _, w := range windows {
		if w.Day == day {
			return true
		}
	}
	return false
}

func anyAbsenceCovers(absences []DateRange, date time.Time) bool {
	for _, a := range absences {
		if a.Contains(date) {
			return true
		}
	}
	return false
}

// intersectsAny uses strict interval intersection rather than testing only
// the slot's start instant, so an appointment shorter than the slot width
// still blocks the slot it lands in.
func intersectsAny(booked []Interval, start, end Clock) bool {
	for _, b := range booked {
		if start < b.End && end > b.Start {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
