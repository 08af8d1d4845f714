package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/zalando/go-keyring"
)

const (
	sessionKVKey = "session"
	keyringUser  = "session-token"
)

// sessionRecord is the kv form of a session. Token is only filled when the
// OS keyring is unavailable.
type sessionRecord struct {
	OwnerID int64  `json:"owner_id"`
	Login   string `json:"login"`
	Token   string `json:"token,omitempty"`
}

// keyringSessionStorage keeps the token in the OS keyring and the session
// metadata in the local kv table.
type keyringSessionStorage struct {
	kv      KVRepository
	service string
	logger  *logger.Logger
}

func NewKeyringSessionStorage(kv KVRepository, service string, logger *logger.Logger) SessionStorage {
	return &keyringSessionStorage{
		kv:      kv,
		service: service,
		logger:  logger,
	}
}

func (s *keyringSessionStorage) Load(ctx context.Context) (models.Session, error) {
	data, err := s.kv.Get(ctx, sessionKVKey)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var rec sessionRecord
	if err = json.Unmarshal(data, &rec); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}

	token := rec.Token
	if token == "" {
		token, err = keyring.Get(s.service, keyringUser)
		if errors.Is(err, keyring.ErrNotFound) {
			return models.Session{}, ErrSessionNotFound
		}
		if err != nil {
			return models.Session{}, fmt.Errorf("read keyring: %w", err)
		}
	}

	return models.Session{OwnerID: rec.OwnerID, Login: rec.Login, Token: token}, nil
}

func (s *keyringSessionStorage) Save(ctx context.Context, session models.Session) error {
	rec := sessionRecord{OwnerID: session.OwnerID, Login: session.Login}
	if err := keyring.Set(s.service, keyringUser, session.Token); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "keyringSessionStorage.Save").
			Msg("os keyring unavailable, keeping token in local database")
		rec.Token = session.Token
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return s.kv.Put(ctx, sessionKVKey, data)
}

func (s *keyringSessionStorage) Clear(ctx context.Context) error {
	if err := keyring.Delete(s.service, keyringUser); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "keyringSessionStorage.Clear").Msg("failed to delete keyring entry")
	}

	return s.kv.Delete(ctx, sessionKVKey)
}
