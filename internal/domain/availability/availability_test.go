package availability

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func mustWindow(t *testing.T, day int, start, end string) Window {
	t.Helper()
	w, err := NewWindow(day, start, end)
	if err != nil {
		t.Fatalf("NewWindow(%d, %s, %s): %v", day, start, end, err)
	}
	return w
}

func mustClock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	if err != nil {
		t.Fatalf("ParseClock(%s): %v", s, err)
	}
	return c
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %v", tt.in, got)
			} else if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseClock(%q): error %v is not ErrInvalidInput", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClockString(t *testing.T) {
	if got := Clock(540).String(); got != "09:00" {
		t.Errorf("Clock(540).String() = %q, want 09:00", got)
	}
	if got := Clock(990).String(); got != "16:30" {
		t.Errorf("Clock(990).String() = %q, want 16:30", got)
	}
}

func TestNewWindowRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name       string
		day        int
		start, end string
	}{
		{name: "day too large", day: 7, start: "09:00", end: "17:00"},
		{name: "negative day", day: -1, start: "09:00", end: "17:00"},
		{name: "end before start", day: 1, start: "17:00", end: "09:00"},
		{name: "empty window", day: 1, start: "09:00", end: "09:00"},
		{name: "bad start time", day: 1, start: "9am", end: "17:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWindow(tt.day, tt.start, tt.end)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestNewDateRangeRejectsInvertedRange(t *testing.T) {
	_, err := NewDateRange(date(2026, time.March, 10), date(2026, time.March, 9))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

// Monday 09:00-17:00, horizon covering one Monday: that Monday is the only
// available day and yields 16 open slots.
func TestScenarioMondayScheduleNoConflicts(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "17:00")}

	// 2026-03-02 is a Monday; a 7-day horizon from it contains exactly one.
	from := date(2026, time.March, 2)
	days := Days(windows, nil, from, 7)

	if len(days) != 1 {
		t.Fatalf("expected exactly one available day, got %v", days)
	}
	if !days[0].Equal(from) {
		t.Errorf("available day = %v, want %v", days[0], from)
	}

	slots := SlotsForDay(windows, time.Monday, nil, 30*time.Minute)
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if slots[0].Start.String() != "09:00" {
		t.Errorf("first slot = %s, want 09:00", slots[0].Start)
	}
	if slots[15].Start.String() != "16:30" {
		t.Errorf("last slot = %s, want 16:30", slots[15].Start)
	}
	for _, s := range slots {
		if !s.Available() {
			t.Errorf("slot %s unexpectedly %s", s.Start, s.State)
		}
	}
}

// An existing 10:00-10:30 scheduled appointment marks its slot booked and
// leaves every other slot open.
func TestScenarioBookedSlot(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "17:00")}
	booked := []Interval{{Start: mustClock(t, "10:00"), End: mustClock(t, "10:30")}}

	slots := SlotsForDay(windows, time.Monday, booked, 30*time.Minute)

	for _, s := range slots {
		want := SlotAvailable
		if s.Start.String() == "10:00" {
			want = SlotBooked
		}
		if s.State != want {
			t.Errorf("slot %s state = %s, want %s", s.Start, s.State, want)
		}
	}
}

// An absence interval covering the Monday removes it from the available
// days even though the weekly schedule matches.
func TestScenarioAbsenceExcludesDay(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "17:00")}
	absence, err := NewDateRange(date(2026, time.March, 1), date(2026, time.March, 3))
	if err != nil {
		t.Fatal(err)
	}

	days := Days(windows, []DateRange{absence}, date(2026, time.March, 2), 7)
	if len(days) != 0 {
		t.Errorf("expected no available days, got %v", days)
	}
}

func TestAbsenceBoundsAreInclusive(t *testing.T) {
	windows := []Window{
		mustWindow(t, 1, "09:00", "12:00"),
		mustWindow(t, 2, "09:00", "12:00"),
		mustWindow(t, 3, "09:00", "12:00"),
	}
	// Absent Monday through Tuesday; Wednesday stays bookable.
	absence, err := NewDateRange(date(2026, time.March, 2), date(2026, time.March, 3))
	if err != nil {
		t.Fatal(err)
	}

	days := Days(windows, []DateRange{absence}, date(2026, time.March, 2), 3)
	if len(days) != 1 || !days[0].Equal(date(2026, time.March, 4)) {
		t.Errorf("expected only Wednesday, got %v", days)
	}
}

func TestDaysOrderedAndBounded(t *testing.T) {
	windows := []Window{
		mustWindow(t, 1, "09:00", "12:00"),
		mustWindow(t, 4, "14:00", "18:00"),
	}
	from := date(2026, time.March, 2)
	horizon := 30

	days := Days(windows, nil, from, horizon)
	limit := from.AddDate(0, 0, horizon)

	for i, d := range days {
		if d.Before(from) || !d.Before(limit) {
			t.Errorf("day %v outside [%v, %v)", d, from, limit)
		}
		if i > 0 && !days[i-1].Before(d) {
			t.Errorf("days not strictly ascending: %v then %v", days[i-1], d)
		}
	}
}

func TestDaysEmptyWithoutSchedule(t *testing.T) {
	if days := Days(nil, nil, date(2026, time.March, 2), 30); len(days) != 0 {
		t.Errorf("expected no days for empty schedule, got %v", days)
	}
}

func TestSlotsNeverExceedWindowEnd(t *testing.T) {
	// 09:00-10:15 with 30-minute slots: the 10:00 slot would spill past the
	// window end and must be dropped, not truncated.
	windows := []Window{mustWindow(t, 2, "09:00", "10:15")}

	slots := SlotsForDay(windows, time.Tuesday, nil, 30*time.Minute)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if end := s.Start.Add(30 * time.Minute); end > mustClock(t, "10:15") {
			t.Errorf("slot %s ends at %s past window end", s.Start, end)
		}
	}
}

func TestSlotsForDayNoMatchingWindow(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "17:00")}
	if slots := SlotsForDay(windows, time.Friday, nil, 30*time.Minute); len(slots) != 0 {
		t.Errorf("expected no slots on a non-working day, got %v", slots)
	}
}

// Two windows on the same weekday are unioned; duplicate slot starts from
// overlapping windows collapse and the result stays ascending.
func TestSlotsForDayUnionsMultipleWindows(t *testing.T) {
	windows := []Window{
		mustWindow(t, 3, "14:00", "16:00"),
		mustWindow(t, 3, "09:00", "11:00"),
		mustWindow(t, 3, "10:00", "12:00"),
	}

	slots := SlotsForDay(windows, time.Wednesday, nil, 30*time.Minute)

	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"14:00", "14:30", "15:00", "15:30",
	}
	var got []string
	for _, s := range slots {
		got = append(got, s.Start.String())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

// A short appointment starting mid-slot still blocks the slot it lands in:
// intersection is checked over the full slot width, not just its start.
func TestShortAppointmentBlocksEnclosingSlot(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "12:00")}
	booked := []Interval{{Start: mustClock(t, "10:10"), End: mustClock(t, "10:20")}}

	slots := SlotsForDay(windows, time.Monday, booked, 30*time.Minute)
	for _, s := range slots {
		want := SlotAvailable
		if s.Start.String() == "10:00" {
			want = SlotBooked
		}
		if s.State != want {
			t.Errorf("slot %s state = %s, want %s", s.Start, s.State, want)
		}
	}
}

func TestSlotsIdempotent(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "17:00")}
	booked := []Interval{{Start: mustClock(t, "11:00"), End: mustClock(t, "11:30")}}

	first := SlotsForDay(windows, time.Monday, booked, 30*time.Minute)
	second := SlotsForDay(windows, time.Monday, booked, 30*time.Minute)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different slot sequences")
	}
}

func TestValidateBooking(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "17:00")}
	booked := []Interval{{Start: mustClock(t, "10:00"), End: mustClock(t, "10:30")}}
	slots := SlotsForDay(windows, time.Monday, booked, 30*time.Minute)

	if err := ValidateBooking(slots, mustClock(t, "09:30")); err != nil {
		t.Errorf("open slot rejected: %v", err)
	}
	if err := ValidateBooking(slots, mustClock(t, "10:00")); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("booked slot: expected ErrSlotUnavailable, got %v", err)
	}
	if err := ValidateBooking(slots, mustClock(t, "08:00")); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("outside hours: expected ErrSlotUnavailable, got %v", err)
	}
}

// Two attempts race for the same slot: after the first booking lands, a
// recomputation now marks the slot booked and the second attempt fails.
func TestValidateBookingSecondAttemptLoses(t *testing.T) {
	windows := []Window{mustWindow(t, 1, "09:00", "17:00")}
	target := mustClock(t, "14:00")

	before := SlotsForDay(windows, time.Monday, nil, 30*time.Minute)
	if err := ValidateBooking(before, target); err != nil {
		t.Fatalf("first attempt rejected: %v", err)
	}

	after := SlotsForDay(windows, time.Monday, []Interval{{Start: target, End: target.Add(30 * time.Minute)}}, 30*time.Minute)
	if err := ValidateBooking(after, target); !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("second attempt: expected ErrSlotUnavailable, got %v", err)
	}
}
