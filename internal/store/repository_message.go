package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
)

// messageRepository stores chat messages insert-only.
type messageRepository struct {
	*DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *messageRepository) List(ctx context.Context, ownerID int64, guruID string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesQuery(ownerID, guruID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.List").
			Int64("owner_id", ownerID).
			Str("guru_id", guruID).
			Msg("failed to list messages")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	msgs := make([]models.Message, 0, 64)
	for rows.Next() {
		var (
			m    models.Message
			role string
		)
		if err = rows.Scan(&m.ID, &m.OwnerID, &m.ClientSideID, &m.GuruID, &role, &m.Content, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		m.Role = models.Role(role)
		msgs = append(msgs, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return msgs, nil
}

func (r *messageRepository) Add(ctx context.Context, ownerID int64, msg models.Message) (models.UpsertResult, error) {
	query, args, err := buildInsertMessageQuery(ownerID, msg)
	if err != nil {
		return models.UpsertResult{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	return r.insertIfAbsent(ctx, "messageRepository.Add", query, args)
}

// SyncAll inserts every message whose client id is new; existing messages are
// counted as skipped and left as they are.
func (r *messageRepository) SyncAll(ctx context.Context, ownerID int64, msgs []models.Message) (models.SyncResult, error) {
	switch len(msgs) {
	case 0:
		return models.SyncResult{}, nil
	case 1:
		res, err := r.Add(ctx, ownerID, msgs[0])
		if err != nil {
			return models.SyncResult{}, err
		}
		var out models.SyncResult
		if res.Inserted {
			out.Add(res)
		} else {
			out.Skip()
		}
		return out, nil
	}

	return r.syncBatch(ctx, "messageRepository.SyncAll", ownerID, len(msgs), func(i int) (string, []any, error) {
		return buildInsertMessageQuery(ownerID, msgs[i])
	}, true)
}

func (r *messageRepository) Clear(ctx context.Context, ownerID int64) (int64, error) {
	n, err := r.execDelete(ctx, "messageRepository.Clear", clearMessages, []any{ownerID})
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info().Int64("owner_id", ownerID).Int64("deleted", n).Msg("messages cleared")
	return n, nil
}
