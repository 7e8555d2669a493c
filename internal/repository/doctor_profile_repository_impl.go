package repository

import (
	"errors"

	"pms-backend/internal/domain/entity"
	domainRepo "pms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAllActive returns profiles only for doctors whose user account is
// active, optionally narrowed by name or specialization.
func (r *doctorProfileRepository) FindAllActive(db *gorm.DB, filter *domainRepo.DoctorFilter) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	query := db.
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.Name != "" {
			query = query.Where("users.full_name ILIKE ?", "%"+filter.Name+"%")
		}
		if filter.Specialization != "" {
			query = query.Where("doctor_profiles.specialization ILIKE ?", "%"+filter.Specialization+"%")
		}
	}

	err := query.
		Preload("User").
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User").Save(profile).Error
}

func (r *doctorProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&entity.DoctorProfile{}).Error
}
