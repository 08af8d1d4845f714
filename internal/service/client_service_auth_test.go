package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/app"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/mock"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubSync records calls made by the auth service.
type stubSync struct {
	pushOK   bool
	pullErr  error
	pushes   int
	pulls    int
	resets   int
	sequence []string
}

func (s *stubSync) Pull(context.Context) error {
	s.pulls++
	s.sequence = append(s.sequence, "pull")
	return s.pullErr
}

func (s *stubSync) Push(context.Context) bool {
	s.pushes++
	s.sequence = append(s.sequence, "push")
	return s.pushOK
}

func (s *stubSync) ResetPullGuard() {
	s.resets++
	s.sequence = append(s.sequence, "reset")
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockRemoteStore, *mock.MockSessionStorage, *stubSync) {
	t.Helper()
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockSessionStorage(ctrl)
	syncSvc := &stubSync{pushOK: true}
	svc := NewClientAuthService(remote, sessions, syncSvc, logger.Nop()).(*clientAuthService)
	return svc, remote, sessions, syncSvc
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, sessions, syncSvc := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().Register(ctx, models.User{Login: "mira", Password: "secret"}).
			Return(models.Session{OwnerID: 7, Token: "tok"}, nil),
		remote.EXPECT().SetToken("tok"),
		sessions.EXPECT().Save(ctx, models.Session{OwnerID: 7, Login: "mira", Token: "tok"}).Return(nil),
	)

	session, err := svc.Register(ctx, "  mira ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "mira", session.Login)
	assert.Equal(t, []string{"reset", "push"}, syncSvc.sequence)
}

func TestClientAuthService_Register_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, _, syncSvc := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Register(ctx, gomock.Any()).
		Return(models.Session{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists))

	_, err := svc.Register(ctx, "mira", "secret")
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
	assert.Zero(t, syncSvc.pushes)
}

func TestClientAuthService_Register_PushFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, sessions, syncSvc := newTestAuthSvc(t, ctrl)
	syncSvc.pushOK = false
	ctx := context.Background()

	remote.EXPECT().Register(ctx, gomock.Any()).Return(models.Session{Token: "tok"}, nil)
	remote.EXPECT().SetToken("tok")
	sessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Register(ctx, "mira", "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, syncSvc.pushes)
}

func TestClientAuthService_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Register(ctx, "   ", "secret")
	assert.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = svc.Login(ctx, "mira", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_PullsAfterSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, sessions, syncSvc := newTestAuthSvc(t, ctrl)
	syncSvc.pullErr = errors.New("offline")
	ctx := context.Background()

	remote.EXPECT().Login(ctx, gomock.Any()).Return(models.Session{OwnerID: 7, Token: "tok"}, nil)
	remote.EXPECT().SetToken("tok")
	sessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	session, err := svc.Login(ctx, "mira", "secret")
	require.NoError(t, err, "a failed pull does not fail the login")
	assert.Equal(t, int64(7), session.OwnerID)
	assert.Equal(t, []string{"reset", "pull"}, syncSvc.sequence)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, _, syncSvc := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Login(ctx, gomock.Any()).
		Return(models.Session{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword))

	_, err := svc.Login(ctx, "mira", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Zero(t, syncSvc.pulls)
}

func TestClientAuthService_Login_SaveSessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, sessions, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Login(ctx, gomock.Any()).Return(models.Session{Token: "tok"}, nil)
	remote.EXPECT().SetToken("tok")
	sessions.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("keyring locked"))

	_, err := svc.Login(ctx, "mira", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error saving session")
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientAuthService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("saved session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, remote, sessions, _ := newTestAuthSvc(t, ctrl)

		sessions.EXPECT().Load(ctx).Return(models.Session{Login: "mira", Token: "tok"}, nil)
		remote.EXPECT().SetToken("tok")

		session, ok, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "mira", session.Login)
	})

	t.Run("nobody signed in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, sessions, _ := newTestAuthSvc(t, ctrl)

		sessions.EXPECT().Load(ctx).Return(models.Session{}, store.ErrSessionNotFound)

		_, ok, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, sessions, _ := newTestAuthSvc(t, ctrl)

		sessions.EXPECT().Load(ctx).Return(models.Session{}, errors.New("dbus unavailable"))

		_, ok, err := svc.Restore(ctx)
		require.Error(t, err)
		assert.False(t, ok)
	})
}

// ── SignOut ──────────────────────────────────────────────────────────────────

func TestClientAuthService_SignOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, sessions, syncSvc := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	remote.EXPECT().Token().Return("tok")
	remote.EXPECT().SetToken("")
	sessions.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.SignOut(ctx))
	assert.Equal(t, []string{"push", "reset"}, syncSvc.sequence)
}

func TestClientAuthService_SignOut_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, remote, _, syncSvc := newTestAuthSvc(t, ctrl)

	remote.EXPECT().Token().Return("")

	assert.ErrorIs(t, svc.SignOut(context.Background()), ErrNotAuthenticated)
	assert.Zero(t, syncSvc.pushes)
}
