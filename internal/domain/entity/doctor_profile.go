package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Biography      string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User      User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	Absences  []DoctorAbsence  `gorm:"foreignKey:DoctorID" json:"absences,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
