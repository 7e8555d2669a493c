package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorAbsence is a closed date range during which a doctor is away.
// Absences override the recurring weekly schedule; both bounds inclusive.
type DoctorAbsence struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null;index" json:"end_date"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorAbsence) TableName() string {
	return "doctor_absences"
}
