package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule represents one recurring weekly availability window for a
// doctor: a day of week plus a start/end time of day. A doctor may carry
// several windows on the same weekday.
type DoctorSchedule struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}
