package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Status   AppointmentStatus // empty matches every status
	DateFrom string            // Format: YYYY-MM-DD
	DateTo   string            // Format: YYYY-MM-DD
}
