package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/validators"
	"github.com/MKhiriev/vedicas-garden/models"
)

type profileService struct {
	repo      store.ProfileRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewProfileService(repo store.ProfileRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{repo: repo, validator: validator, logger: logger}
}

func (s *profileService) Get(ctx context.Context, ownerID int64) (models.Profile, error) {
	return s.repo.Get(ctx, ownerID)
}

// Put patches the stored profile with the non-empty fields of profile. An
// entirely empty profile is accepted and changes nothing but the timestamp.
func (s *profileService) Put(ctx context.Context, ownerID int64, profile models.Profile) (models.UpsertResult, error) {
	if err := s.validator.Validate(ctx, profile); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("owner_id", ownerID).Msg("profile rejected")
		return models.UpsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.repo.Upsert(ctx, ownerID, profile)
}
