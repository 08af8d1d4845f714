package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/models"
)

type clientAuthService struct {
	remote   adapter.RemoteStore
	sessions store.SessionStorage
	sync     ClientSyncService

	logger *logger.Logger
}

func NewClientAuthService(remote adapter.RemoteStore, sessions store.SessionStorage, syncService ClientSyncService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{remote: remote, sessions: sessions, sync: syncService, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, login, password string) (models.Session, error) {
	session, err := a.authenticate(ctx, login, password, a.remote.Register)
	if err != nil {
		return models.Session{}, err
	}

	if !a.sync.Push(ctx) {
		a.logger.Warn().Str("login", session.Login).Msg("initial push after registration failed")
	}
	return session, nil
}

func (a *clientAuthService) Login(ctx context.Context, login, password string) (models.Session, error) {
	session, err := a.authenticate(ctx, login, password, a.remote.Login)
	if err != nil {
		return models.Session{}, err
	}

	if err = a.sync.Pull(ctx); err != nil {
		a.logger.Warn().Err(err).Str("login", session.Login).Msg("pull after login failed")
	}
	return session, nil
}

func (a *clientAuthService) authenticate(
	ctx context.Context,
	login, password string,
	call func(context.Context, models.User) (models.Session, error),
) (models.Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.Session{}, ErrEmptyCredentials
	}

	session, err := call(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	session.Login = login

	a.remote.SetToken(session.Token)
	a.sync.ResetPullGuard()
	if err = a.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	a.logger.Info().Int64("owner_id", session.OwnerID).Str("login", login).Msg("signed in")
	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, bool, error) {
	session, err := a.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, fmt.Errorf("error loading session: %w", err)
	}
	if !session.Authenticated() {
		return models.Session{}, false, nil
	}

	a.remote.SetToken(session.Token)
	return session, true, nil
}

// SignOut pushes first; a failed push is logged and signing out continues.
func (a *clientAuthService) SignOut(ctx context.Context) error {
	if !a.Authenticated() {
		return ErrNotAuthenticated
	}

	if !a.sync.Push(ctx) {
		a.logger.Warn().Msg("push before sign out failed")
	}

	a.remote.SetToken("")
	a.sync.ResetPullGuard()
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}

	a.logger.Info().Msg("signed out")
	return nil
}

func (a *clientAuthService) Authenticated() bool {
	return a.remote.Token() != ""
}
