package repository

import (
	"errors"

	"pms-backend/internal/domain/entity"
	domainRepo "pms-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Preload("Doctor.User").Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("record_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
