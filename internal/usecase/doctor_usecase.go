package usecase

import (
	"context"
	"errors"

	"dental-care-server/internal/converter"
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/delivery/http/middleware"
	"dental-care-server/internal/domain/entity"
	"dental-care-server/internal/domain/repository"
	"dental-care-server/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	List(ctx context.Context) (*dto.DoctorListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := &entity.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		ImageURL:  req.ImageURL,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	actor, _ := middleware.GetUserEmailFromContext(ctx)
	u.auditService.LogCreate(ctx, actor, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), doctor)

	u.log.Infof("Doctor created: id=%s, specialty=%s", doctor.ID, doctor.Specialty)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	rows, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	actor, _ := middleware.GetUserEmailFromContext(ctx)
	u.auditService.LogDelete(ctx, actor, entity.AuditActionDoctorDelete, "doctor", id.String(), doctor)

	u.log.Infof("Doctor deleted: id=%s, by=%s", id, actor)
	return nil
}
