package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

type seedLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewSeedLogRepository(db *DB, logger *logger.Logger) SeedLogRepository {
	return &seedLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *seedLogRepository) Water(ctx context.Context, seedClientID, date string) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insertSeedLog, seedClientID, date, models.SeedLogCompleted); err != nil {
		log.Err(err).
			Str("func", "seedLogRepository.Water").
			Str("seed_client_id", seedClientID).
			Str("date", date).
			Msg("failed to insert seed log")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var id int64
	if err = tx.QueryRowContext(ctx, findSeedLog, seedClientID, date).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return id, nil
}

func (r *seedLogRepository) ListBySeed(ctx context.Context, seedClientID string) ([]models.SeedLog, error) {
	rows, err := r.QueryContext(ctx, listSeedLogs, seedClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var logs []models.SeedLog
	for rows.Next() {
		var l models.SeedLog
		if err = rows.Scan(&l.ID, &l.SeedClientID, &l.Date, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logs, nil
}

func (r *seedLogRepository) DeleteBySeed(ctx context.Context, seedClientID string) (int64, error) {
	res, err := r.ExecContext(ctx, deleteSeedLogs, seedClientID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res.RowsAffected()
}
