package dto

// Response DTOs

// AvailableDaysResponse lists the bookable calendar days for one doctor
// within the booking horizon.
type AvailableDaysResponse struct {
	DoctorID string   `json:"doctor_id"`
	Days     []string `json:"days"` // Format: YYYY-MM-DD, ascending
	Total    int      `json:"total"`
}

// TimeSlotResponse is one candidate slot on a chosen day.
type TimeSlotResponse struct {
	Time      string `json:"time"` // Format: HH:MM
	Available bool   `json:"available"`
	State     string `json:"state"` // available | booked | unavailable
}

type TimeSlotListResponse struct {
	DoctorID string             `json:"doctor_id"`
	Date     string             `json:"date"`
	Slots    []TimeSlotResponse `json:"slots"`
	Total    int                `json:"total"`
}
