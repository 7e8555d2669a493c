package usecase

import (
	"testing"
	"time"

	"pms-backend/config"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00:00", "09:00"},
		{"09:00", "09:00"},
		{"17:30:15", "17:30"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeTime(tt.in); got != tt.want {
			t.Errorf("normalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckHorizon(t *testing.T) {
	u := &appointmentUsecase{booking: config.BookingConfig{HorizonDays: 30}}
	today := time.Now()

	if err := u.checkHorizon(today); err != nil {
		t.Errorf("expected today to be bookable, got %v", err)
	}
	if err := u.checkHorizon(today.AddDate(0, 0, 29)); err != nil {
		t.Errorf("expected last day of horizon to be bookable, got %v", err)
	}
	if err := u.checkHorizon(today.AddDate(0, 0, 30)); err == nil {
		t.Error("expected day past horizon to be rejected")
	}
	if err := u.checkHorizon(today.AddDate(0, 0, -1)); err == nil {
		t.Error("expected yesterday to be rejected")
	}
}
