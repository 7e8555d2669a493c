package repository

import (
	"pms-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorFilter narrows the doctor directory listing.
type DoctorFilter struct {
	Name           string // ILIKE on users.full_name
	Specialization string // ILIKE on doctor_profiles.specialization
}

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAllActive(db *gorm.DB, filter *DoctorFilter) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) error
}
