package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/mock"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/models"
)

type fakeAuth struct {
	service.ClientAuthService

	session    models.Session
	restoreErr error
	signedIn   bool
}

func (f *fakeAuth) Restore(context.Context) (models.Session, bool, error) {
	if f.restoreErr != nil {
		return models.Session{}, false, f.restoreErr
	}
	return f.session, f.signedIn, nil
}

func (f *fakeAuth) Authenticated() bool { return f.signedIn }

type fakeSync struct {
	pulls  atomic.Int32
	pushes atomic.Int32
}

func (f *fakeSync) Pull(context.Context) error { f.pulls.Add(1); return nil }
func (f *fakeSync) Push(context.Context) bool  { f.pushes.Add(1); return true }
func (f *fakeSync) ResetPullGuard()            {}

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

func newTestApp(t *testing.T, auth *fakeAuth, sync *fakeSync) *App {
	t.Helper()
	ctrl := gomock.NewController(t)

	kv := mock.NewMockKVRepository(ctrl)
	kv.EXPECT().Get(gomock.Any(), models.SnapshotKey).Return(nil, store.ErrKeyNotFound)

	services := &service.ClientServices{
		State:       service.NewLocalState(kv, logger.Nop()),
		AuthService: auth,
		SyncService: sync,
		SyncJob:     service.NewClientSyncJob(sync, logger.Nop()),
	}

	app := newApp(services, config.Workers{SyncInterval: time.Hour}, nil, logger.Nop())
	require.NoError(t, app.init(context.Background()))
	return app
}

func TestApp_RunSignedIn(t *testing.T) {
	defer goleak.VerifyNone(t)

	sync := &fakeSync{}
	app := newTestApp(t, &fakeAuth{signedIn: true, session: models.Session{OwnerID: 1, Login: "mira", Token: "t"}}, sync)

	err := app.Run(context.Background(), uiFunc(func(context.Context) error { return nil }))

	require.NoError(t, err)
	assert.EqualValues(t, 1, sync.pulls.Load())
	assert.EqualValues(t, 1, sync.pushes.Load(), "final push only")
}

func TestApp_RunSignedOut(t *testing.T) {
	defer goleak.VerifyNone(t)

	sync := &fakeSync{}
	app := newTestApp(t, &fakeAuth{}, sync)

	require.NoError(t, app.Run(context.Background(), uiFunc(func(context.Context) error { return nil })))
	assert.Zero(t, sync.pulls.Load())
	assert.Zero(t, sync.pushes.Load())
}

func TestApp_RunPropagatesUIError(t *testing.T) {
	defer goleak.VerifyNone(t)

	boom := errors.New("terminal gone")
	app := newTestApp(t, &fakeAuth{}, &fakeSync{})

	err := app.Run(context.Background(), uiFunc(func(context.Context) error { return boom }))

	assert.ErrorIs(t, err, boom)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	app := newTestApp(t, &fakeAuth{}, &fakeSync{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := app.Run(ctx, uiFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}))

	assert.NoError(t, err)
}

func TestApp_InitToleratesRestoreError(t *testing.T) {
	app := newTestApp(t, &fakeAuth{restoreErr: errors.New("keyring locked")}, &fakeSync{})
	assert.NotNil(t, app.Services())
}

func TestCloseAll_ReverseOrderAndJoin(t *testing.T) {
	var order []int
	boom := errors.New("boom")

	err := closeAll([]func() error{
		func() error { order = append(order, 1); return nil },
		func() error { order = append(order, 2); return boom },
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{2, 1}, order)
}
