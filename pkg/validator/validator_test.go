package validator

import "testing"

type bookingForm struct {
	Date      string `validate:"required,datetime=2006-01-02"`
	StartTime string `validate:"required,datetime=15:04"`
	Reason    string `validate:"max=500"`
}

func TestValidateBookingForm(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		form    bookingForm
		wantErr bool
	}{
		{
			name: "valid form",
			form: bookingForm{Date: "2026-03-02", StartTime: "09:30", Reason: "checkup"},
		},
		{
			name:    "missing date",
			form:    bookingForm{StartTime: "09:30"},
			wantErr: true,
		},
		{
			name:    "bad date format",
			form:    bookingForm{Date: "02/03/2026", StartTime: "09:30"},
			wantErr: true,
		},
		{
			name:    "bad time format",
			form:    bookingForm{Date: "2026-03-02", StartTime: "9h30"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.form)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&bookingForm{Date: "bad", StartTime: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := cv.FormatValidationErrors(err)
	if _, ok := formatted["Date"]; !ok {
		t.Error("expected an entry for Date")
	}
	if _, ok := formatted["StartTime"]; !ok {
		t.Error("expected an entry for StartTime")
	}
}
