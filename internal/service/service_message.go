package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/validators"
	"github.com/MKhiriev/vedicas-garden/models"
)

type messageService struct {
	repo      store.MessageRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewMessageService(repo store.MessageRepository, validator validators.Validator, logger *logger.Logger) MessageService {
	return &messageService{repo: repo, validator: validator, logger: logger}
}

func (s *messageService) List(ctx context.Context, ownerID int64, guruID string) ([]models.Message, error) {
	return s.repo.List(ctx, ownerID, guruID)
}

func (s *messageService) Add(ctx context.Context, ownerID int64, msg models.Message) (models.UpsertResult, error) {
	if err := s.validator.Validate(ctx, msg); err != nil {
		return models.UpsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.repo.Add(ctx, ownerID, msg)
}

func (s *messageService) Sync(ctx context.Context, ownerID int64, msgs []models.Message) (models.SyncResult, error) {
	if len(msgs) == 0 {
		return models.SyncResult{}, ErrEmptyBatch
	}
	if err := s.validator.Validate(ctx, msgs); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("owner_id", ownerID).Msg("message batch rejected")
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.repo.SyncAll(ctx, ownerID, msgs)
}

func (s *messageService) Clear(ctx context.Context, ownerID int64) (int64, error) {
	n, err := s.repo.Clear(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info().Int64("owner_id", ownerID).Int64("deleted", n).Msg("chat history cleared")
	return n, nil
}
