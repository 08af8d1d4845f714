package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

type wisdomRepository struct {
	*DB
	logger *logger.Logger
}

func NewWisdomRepository(db *DB, logger *logger.Logger) WisdomRepository {
	return &wisdomRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *wisdomRepository) List(ctx context.Context, ownerID int64) ([]models.WisdomNote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery("wisdom", wisdomColumns, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "wisdomRepository.List").Int64("owner_id", ownerID).Msg("failed to list wisdom")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.WisdomNote, 0, 16)
	for rows.Next() {
		var (
			w    models.WisdomNote
			tags []byte
		)
		if err = rows.Scan(
			&w.ID, &w.OwnerID, &w.ClientSideID, &w.Title, &w.Category, &w.Content,
			&w.GuruID, &w.Favorite, &w.Source, &tags, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "wisdomRepository.List").Msg("failed to scan wisdom row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal(tags, &w.Tags); err != nil {
			return nil, fmt.Errorf("%w: tags: %w", ErrScanningRow, err)
		}
		if len(w.Tags) == 0 {
			w.Tags = nil
		}
		notes = append(notes, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *wisdomRepository) Upsert(ctx context.Context, ownerID int64, note models.WisdomNote) (models.UpsertResult, error) {
	query, args, err := buildUpsertWisdomQuery(ownerID, note)
	if err != nil {
		return models.UpsertResult{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.upsertOne(ctx, "wisdomRepository.Upsert", query, args)
}

func (r *wisdomRepository) SyncAll(ctx context.Context, ownerID int64, notes []models.WisdomNote) (models.SyncResult, error) {
	switch len(notes) {
	case 0:
		return models.SyncResult{}, nil
	case 1:
		res, err := r.Upsert(ctx, ownerID, notes[0])
		if err != nil {
			return models.SyncResult{}, err
		}
		var out models.SyncResult
		out.Add(res)
		return out, nil
	}

	return r.syncBatch(ctx, "wisdomRepository.SyncAll", ownerID, len(notes), func(i int) (string, []any, error) {
		return buildUpsertWisdomQuery(ownerID, notes[i])
	}, false)
}

func (r *wisdomRepository) Delete(ctx context.Context, ownerID int64, clientSideID string) error {
	query, args, err := buildDeleteByClientIDQuery("wisdom", ownerID, clientSideID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.execDelete(ctx, "wisdomRepository.Delete", query, args)
	return err
}
