package converter

import (
	"testing"
	"time"

	"pms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestMedicalRecordToResponse(t *testing.T) {
	recordDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	record := &entity.MedicalRecord{
		ID:            uuid.New(),
		PatientID:     uuid.New(),
		DoctorID:      uuid.New(),
		RecordDate:    recordDate,
		BloodPressure: "120/80",
		HeartRate:     72,
		Temperature:   decimal.NewFromFloat(37.2),
		Weight:        decimal.NewFromFloat(68.5),
		Notes:         "Routine checkup",
	}

	response := MedicalRecordToResponse(record)
	if response == nil {
		t.Fatal("expected a response, got nil")
	}

	if response.RecordDate != "2026-04-10" {
		t.Errorf("expected record date 2026-04-10, got %s", response.RecordDate)
	}
	if response.BloodPressure != "120/80" {
		t.Errorf("expected blood pressure 120/80, got %s", response.BloodPressure)
	}
	if response.HeartRate != 72 {
		t.Errorf("expected heart rate 72, got %d", response.HeartRate)
	}
	if !response.Temperature.Equal(decimal.NewFromFloat(37.2)) {
		t.Errorf("expected temperature 37.2, got %s", response.Temperature)
	}
	if !response.Weight.Equal(decimal.NewFromFloat(68.5)) {
		t.Errorf("expected weight 68.5, got %s", response.Weight)
	}
}

func TestMedicalRecordToResponseNil(t *testing.T) {
	if response := MedicalRecordToResponse(nil); response != nil {
		t.Errorf("expected nil response, got %+v", response)
	}
}
