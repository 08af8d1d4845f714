package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

// seedRepository is the PostgreSQL-backed implementation of [SeedRepository].
type seedRepository struct {
	*DB
	logger *logger.Logger
}

func NewSeedRepository(db *DB, logger *logger.Logger) SeedRepository {
	return &seedRepository{
		DB:     db,
		logger: logger,
	}
}

// List returns the owner's seeds in insertion order.
func (r *seedRepository) List(ctx context.Context, ownerID int64) ([]models.Seed, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery("seeds", seedColumns, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "seedRepository.List").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing seeds")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	seeds := make([]models.Seed, 0, 16)
	for rows.Next() {
		var (
			s     models.Seed
			diff  string
			dates []byte
		)
		if err = rows.Scan(
			&s.ID, &s.OwnerID, &s.ClientSideID, &s.Title, &s.Category, &s.Description,
			&diff, &s.GuruID, &s.Streak, &s.LastCompleted, &dates,
			&s.Active, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "seedRepository.List").Int64("owner_id", ownerID).Msg("failed to scan seed row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		s.Difficulty = models.Difficulty(diff)
		if err = json.Unmarshal(dates, &s.CompletedDates); err != nil {
			return nil, fmt.Errorf("%w: completed_dates: %w", ErrScanningRow, err)
		}
		seeds = append(seeds, s)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "seedRepository.List").Int64("owner_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return seeds, nil
}

// Upsert patches the seed with the same client id or inserts it.
func (r *seedRepository) Upsert(ctx context.Context, ownerID int64, seed models.Seed) (models.UpsertResult, error) {
	query, args, err := buildUpsertSeedQuery(ownerID, seed)
	if err != nil {
		return models.UpsertResult{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	logger.FromContext(ctx).Debug().
		Int64("owner_id", ownerID).
		Str("client_side_id", seed.ClientSideID).
		Msg("upserting seed")

	return r.upsertOne(ctx, "seedRepository.Upsert", query, args)
}

// SyncAll upserts every seed; one failure fails the whole batch.
func (r *seedRepository) SyncAll(ctx context.Context, ownerID int64, seeds []models.Seed) (models.SyncResult, error) {
	switch len(seeds) {
	case 0:
		return models.SyncResult{}, nil
	case 1:
		res, err := r.Upsert(ctx, ownerID, seeds[0])
		if err != nil {
			return models.SyncResult{}, err
		}
		var out models.SyncResult
		out.Add(res)
		return out, nil
	}

	return r.syncBatch(ctx, "seedRepository.SyncAll", ownerID, len(seeds), func(i int) (string, []any, error) {
		return buildUpsertSeedQuery(ownerID, seeds[i])
	}, false)
}

// Delete removes the seed; a missing id is not an error.
func (r *seedRepository) Delete(ctx context.Context, ownerID int64, clientSideID string) error {
	query, args, err := buildDeleteByClientIDQuery("seeds", ownerID, clientSideID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := r.execDelete(ctx, "seedRepository.Delete", query, args)
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Int64("owner_id", ownerID).
		Str("client_side_id", clientSideID).
		Int64("deleted", n).
		Msg("seed deleted")
	return nil
}
