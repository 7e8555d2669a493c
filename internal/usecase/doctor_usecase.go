package usecase

import (
	"context"
	"errors"

	"pms-backend/internal/converter"
	"pms-backend/internal/delivery/dto"
	"pms-backend/internal/domain/entity"
	"pms-backend/internal/domain/repository"
	"pms-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	// ListDoctors is the patient-facing directory of active doctors.
	ListDoctors(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	// UpdateDoctor and DeactivateDoctor are admin operations.
	UpdateDoctor(ctx context.Context, adminID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeactivateDoctor(ctx context.Context, adminID, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error) {
	profiles, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(profile), nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, adminID, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	old := *profile
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Biography != "" {
		profile.Biography = req.Biography
	}

	if err := u.doctorRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if req.FullName != "" || req.IsActive != nil {
		user := &profile.User
		if req.FullName != "" {
			user.FullName = req.FullName
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update doctor user: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogChange(tx, &adminID, entity.AuditActionDoctorUpdate,
		"doctor_profile", doctorID.String(), old, profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(profile), nil
}

func (u *doctorUsecase) DeactivateDoctor(ctx context.Context, adminID, doctorID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if profile == nil {
		return ErrDoctorNotFound
	}

	// Soft delete: history (appointments, records) stays intact.
	profile.User.IsActive = false
	if err := u.userRepo.Update(tx, &profile.User); err != nil {
		u.log.Warnf("Failed to deactivate doctor: %+v", err)
		return err
	}

	if err := u.auditService.Log(tx, &adminID, entity.AuditActionDoctorDelete, entity.JSON{
		"doctor_id": doctorID.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
