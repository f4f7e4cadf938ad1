package service

import (
	"context"

	"dental-care-server/internal/domain/entity"
	"dental-care-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, actorEmail, action, entityName, entityID string, newValue interface{}) error
	LogDelete(ctx context.Context, actorEmail, action, entityName, entityID string, oldValue interface{}) error
	LogUpdate(ctx context.Context, actorEmail, action, entityName, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, actorEmail, action, entityName, entityID string, newValue interface{}) error {
	return s.write(ctx, actorEmail, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, actorEmail, action, entityName, entityID string, oldValue interface{}) error {
	return s.write(ctx, actorEmail, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, actorEmail, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return s.write(ctx, actorEmail, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) write(ctx context.Context, actorEmail, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		ActorEmail: actorEmail,
		Action:     action,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
