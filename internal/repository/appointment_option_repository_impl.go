package repository

import (
	"context"
	"errors"

	"dental-care-server/internal/domain/entity"
	domainRepo "dental-care-server/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentOptionRepository struct {
	db *gorm.DB
}

func NewAppointmentOptionRepository(db *gorm.DB) domainRepo.AppointmentOptionRepository {
	return &appointmentOptionRepository{db: db}
}

func (r *appointmentOptionRepository) FindAll(ctx context.Context) ([]entity.AppointmentOption, error) {
	var options []entity.AppointmentOption
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *appointmentOptionRepository) FindByName(ctx context.Context, name string) (*entity.AppointmentOption, error) {
	var option entity.AppointmentOption
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&option).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

func (r *appointmentOptionRepository) FindNames(ctx context.Context) ([]entity.AppointmentOption, error) {
	var options []entity.AppointmentOption
	err := r.db.WithContext(ctx).Select("id", "name").Order("created_at ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
