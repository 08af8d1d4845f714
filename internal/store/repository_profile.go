package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

type profileRepository struct {
	*DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *profileRepository) Get(ctx context.Context, ownerID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(ownerID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		p     models.Profile
		birth []byte
		chart []byte
		dasha []byte
	)
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Gender, &p.Profession, &p.RelationshipStatus,
		&p.BirthPlace, &birth, &chart, &dasha, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "profileRepository.Get").Int64("owner_id", ownerID).Msg("failed to get profile")
		return models.Profile{}, r.wrap(ErrExecutingQuery, err)
	}

	if len(birth) > 0 {
		p.BirthData = new(models.BirthData)
		if err = json.Unmarshal(birth, p.BirthData); err != nil {
			return models.Profile{}, fmt.Errorf("%w: birth_data: %w", ErrScanningRow, err)
		}
	}
	if len(chart) > 0 {
		p.ChartData = chart
	}
	if len(dasha) > 0 {
		p.DashaData = dasha
	}

	return p, nil
}

// Upsert creates the owner's profile on first call. Later calls patch only
// the non-empty fields of profile.
func (r *profileRepository) Upsert(ctx context.Context, ownerID int64, profile models.Profile) (models.UpsertResult, error) {
	query, args, err := buildUpsertProfileQuery(ownerID, profile)
	if err != nil {
		return models.UpsertResult{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	logger.FromContext(ctx).Debug().Int64("owner_id", ownerID).Msg("upserting profile")
	return r.upsertOne(ctx, "profileRepository.Upsert", query, args)
}
