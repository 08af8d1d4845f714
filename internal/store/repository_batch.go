package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

// queryBuilder renders the statement for the i-th item of a batch. Every
// item renders the same SQL text; only the arguments differ.
type queryBuilder func(i int) (string, []any, error)

// upsertOne runs a single-row upsert outside a transaction.
func (db *DB) upsertOne(ctx context.Context, funcName string, query string, args []any) (models.UpsertResult, error) {
	var res models.UpsertResult
	if err := db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.Inserted); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to upsert row")
		return models.UpsertResult{}, db.wrap(ErrExecutingQuery, err)
	}
	return res, nil
}

// insertIfAbsent runs an INSERT ... ON CONFLICT DO NOTHING RETURNING id.
// A conflict yields Inserted=false and no error.
func (db *DB) insertIfAbsent(ctx context.Context, funcName string, query string, args []any) (models.UpsertResult, error) {
	var id int64
	err := db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UpsertResult{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to insert row")
		return models.UpsertResult{}, db.wrap(ErrExecutingQuery, err)
	}
	return models.UpsertResult{ID: id, Inserted: true}, nil
}

// syncBatch applies n upserts sequentially in one transaction with a single
// prepared statement. With skipExisting the statement is insert-only and a
// missing RETURNING row counts as skipped. Any failure rolls everything back.
func (db *DB) syncBatch(ctx context.Context, funcName string, ownerID int64, n int, build queryBuilder, skipExisting bool) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Int("count", n).
			Msg("failed to begin transaction")
		return models.SyncResult{}, db.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var (
		stmt   *sql.Stmt
		result models.SyncResult
	)
	defer func() {
		if stmt != nil {
			stmt.Close()
		}
	}()

	for i := 0; i < n; i++ {
		query, args, buildErr := build(i)
		if buildErr != nil {
			log.Err(buildErr).Str("func", funcName).Int("iteration", i+1).Msg("failed to build query")
			return models.SyncResult{}, errors.Join(ErrBuildingSQLQuery, buildErr)
		}

		if stmt == nil {
			stmt, err = tx.PrepareContext(ctx, query)
			if err != nil {
				log.Err(err).
					Str("func", funcName).
					Int64("owner_id", ownerID).
					Msg("failed to prepare statement")
				return models.SyncResult{}, db.wrap(ErrPreparingStatement, err)
			}
		}

		log.Debug().
			Str("func", funcName).
			Int("iteration", i+1).
			Int("total", n).
			Int64("owner_id", ownerID).
			Msg("syncing item in transaction")

		row := stmt.QueryRowContext(ctx, args...)
		if skipExisting {
			var id int64
			scanErr := row.Scan(&id)
			switch {
			case errors.Is(scanErr, sql.ErrNoRows):
				result.Skip()
				continue
			case scanErr != nil:
				log.Err(scanErr).Str("func", funcName).Int("iteration", i+1).Msg("failed to execute statement")
				return models.SyncResult{}, db.wrap(ErrExecutingStatement, scanErr)
			}
			result.Add(models.UpsertResult{ID: id, Inserted: true})
			continue
		}

		var res models.UpsertResult
		if scanErr := row.Scan(&res.ID, &res.Inserted); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Int("iteration", i+1).Msg("failed to execute statement")
			return models.SyncResult{}, db.wrap(ErrExecutingStatement, scanErr)
		}
		result.Add(res)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Int64("owner_id", ownerID).Msg("failed to commit transaction")
		return models.SyncResult{}, db.wrap(ErrCommitingTransaction, err)
	}

	return result, nil
}

// execDelete runs a DELETE and returns the number of rows removed.
func (db *DB) execDelete(ctx context.Context, funcName string, query string, args []any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to delete rows")
		return 0, db.wrap(ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, db.wrap(ErrExecutingQuery, err)
	}
	return n, nil
}
