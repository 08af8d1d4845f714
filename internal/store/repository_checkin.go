package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

type checkinRepository struct {
	*DB
	logger *logger.Logger
}

func NewCheckinRepository(db *DB, logger *logger.Logger) CheckinRepository {
	return &checkinRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *checkinRepository) List(ctx context.Context, ownerID int64) ([]models.Checkin, error) {
	query, args, err := buildListQuery("checkins", checkinColumns, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "checkinRepository.List").
			Int64("owner_id", ownerID).
			Msg("failed to list checkins")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	checkins := make([]models.Checkin, 0, 32)
	for rows.Next() {
		var c models.Checkin
		if err = rows.Scan(
			&c.ID, &c.OwnerID, &c.ClientSideID, &c.Date, &c.Mood, &c.Energy, &c.Focus,
			&c.Gratitude, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		checkins = append(checkins, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return checkins, nil
}

func (r *checkinRepository) Upsert(ctx context.Context, ownerID int64, checkin models.Checkin) (models.UpsertResult, error) {
	query, args, err := buildUpsertCheckinQuery(ownerID, checkin)
	if err != nil {
		return models.UpsertResult{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.upsertOne(ctx, "checkinRepository.Upsert", query, args)
}

func (r *checkinRepository) SyncAll(ctx context.Context, ownerID int64, checkins []models.Checkin) (models.SyncResult, error) {
	switch len(checkins) {
	case 0:
		return models.SyncResult{}, nil
	case 1:
		res, err := r.Upsert(ctx, ownerID, checkins[0])
		if err != nil {
			return models.SyncResult{}, err
		}
		var out models.SyncResult
		out.Add(res)
		return out, nil
	}

	return r.syncBatch(ctx, "checkinRepository.SyncAll", ownerID, len(checkins), func(i int) (string, []any, error) {
		return buildUpsertCheckinQuery(ownerID, checkins[i])
	}, false)
}
