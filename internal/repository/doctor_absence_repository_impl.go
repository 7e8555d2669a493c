package repository

import (
	"errors"
	"time"

	"pms-backend/internal/domain/entity"
	domainRepo "pms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorAbsenceRepository struct{}

func NewDoctorAbsenceRepository() domainRepo.DoctorAbsenceRepository {
	return &doctorAbsenceRepository{}
}

func (r *doctorAbsenceRepository) Create(db *gorm.DB, absence *entity.DoctorAbsence) error {
	return db.Create(absence).Error
}

func (r *doctorAbsenceRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorAbsence, error) {
	var absence entity.DoctorAbsence
	err := db.Where("id = ?", id).First(&absence).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &absence, nil
}

func (r *doctorAbsenceRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAbsence, error) {
	var absences []entity.DoctorAbsence
	err := db.Where("doctor_id = ?", doctorID).
		Order("start_date ASC").
		Find(&absences).Error
	if err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *doctorAbsenceRepository) FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID, notBefore time.Time) ([]entity.DoctorAbsence, error) {
	var absences []entity.DoctorAbsence
	err := db.Where("doctor_id = ? AND end_date >= ?", doctorID, notBefore.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&absences).Error
	if err != nil {
		return nil, err
	}
	return absences, nil
}

func (r *doctorAbsenceRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.DoctorAbsence{})
	return affected.RowsAffected, affected.Error
}
