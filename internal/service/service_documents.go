// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/validators"
	"github.com/MKhiriev/vedicas-garden/models"
)

// documentRepository is the part every owner-scoped collection repository
// shares.
type documentRepository[T any] interface {
	List(ctx context.Context, ownerID int64) ([]T, error)
	Upsert(ctx context.Context, ownerID int64, doc T) (models.UpsertResult, error)
	SyncAll(ctx context.Context, ownerID int64, docs []T) (models.SyncResult, error)
}

// documentService validates documents before handing them to the
// repository. kind names the collection in log lines.
type documentService[T any] struct {
	repo      documentRepository[T]
	validator validators.Validator
	kind      string

	logger *logger.Logger
}

func (s *documentService[T]) List(ctx context.Context, ownerID int64) ([]T, error) {
	docs, err := s.repo.List(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", s.kind).Int64("owner_id", ownerID).Msg("list failed")
		return nil, err
	}
	return docs, nil
}

func (s *documentService[T]) Put(ctx context.Context, ownerID int64, doc T) (models.UpsertResult, error) {
	if err := s.validator.Validate(ctx, doc); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("kind", s.kind).Int64("owner_id", ownerID).Msg("document rejected")
		return models.UpsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.repo.Upsert(ctx, ownerID, doc)
}

// Sync upserts docs in one transaction. An empty batch is rejected so the
// caller learns that nothing was sent.
func (s *documentService[T]) Sync(ctx context.Context, ownerID int64, docs []T) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	if len(docs) == 0 {
		return models.SyncResult{}, ErrEmptyBatch
	}
	if err := s.validator.Validate(ctx, docs); err != nil {
		log.Warn().Err(err).Str("kind", s.kind).Int64("owner_id", ownerID).Int("count", len(docs)).Msg("batch rejected")
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	res, err := s.repo.SyncAll(ctx, ownerID, docs)
	if err != nil {
		log.Err(err).Str("kind", s.kind).Int64("owner_id", ownerID).Int("count", len(docs)).Msg("batch sync failed")
		return models.SyncResult{}, err
	}

	log.Debug().Str("kind", s.kind).Int64("owner_id", ownerID).
		Int("inserted", res.Inserted).Int("patched", res.Patched).Msg("batch synced")
	return res, nil
}

type seedService struct {
	*documentService[models.Seed]
	seeds store.SeedRepository
}

func NewSeedService(repo store.SeedRepository, validator validators.Validator, logger *logger.Logger) SeedService {
	return &seedService{
		documentService: &documentService[models.Seed]{repo: repo, validator: validator, kind: "seed", logger: logger},
		seeds:           repo,
	}
}

func (s *seedService) Delete(ctx context.Context, ownerID int64, clientSideID string) error {
	if strings.TrimSpace(clientSideID) == "" {
		return ErrEmptyClientID
	}
	return s.seeds.Delete(ctx, ownerID, clientSideID)
}

type wisdomService struct {
	*documentService[models.WisdomNote]
	notes store.WisdomRepository
}

func NewWisdomService(repo store.WisdomRepository, validator validators.Validator, logger *logger.Logger) WisdomService {
	return &wisdomService{
		documentService: &documentService[models.WisdomNote]{repo: repo, validator: validator, kind: "wisdom", logger: logger},
		notes:           repo,
	}
}

func (s *wisdomService) Delete(ctx context.Context, ownerID int64, clientSideID string) error {
	if strings.TrimSpace(clientSideID) == "" {
		return ErrEmptyClientID
	}
	return s.notes.Delete(ctx, ownerID, clientSideID)
}

func NewCheckinService(repo store.CheckinRepository, validator validators.Validator, logger *logger.Logger) CheckinService {
	return &documentService[models.Checkin]{repo: repo, validator: validator, kind: "checkin", logger: logger}
}
