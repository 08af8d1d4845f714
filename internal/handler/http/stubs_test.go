package http

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return s.registerFn(ctx, user)
}

func (s *stubAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return s.loginFn(ctx, user)
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if s.createTokenFn == nil {
		return models.Token{SignedString: "signed", OwnerID: user.ID}, nil
	}
	return s.createTokenFn(ctx, user)
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn == nil {
		return models.Token{OwnerID: 7}, nil
	}
	return s.parseTokenFn(ctx, tokenString)
}

type stubProfileService struct {
	getFn func(ctx context.Context, ownerID int64) (models.Profile, error)
	putFn func(ctx context.Context, ownerID int64, p models.Profile) (models.UpsertResult, error)
}

func (s *stubProfileService) Get(ctx context.Context, ownerID int64) (models.Profile, error) {
	return s.getFn(ctx, ownerID)
}

func (s *stubProfileService) Put(ctx context.Context, ownerID int64, p models.Profile) (models.UpsertResult, error) {
	return s.putFn(ctx, ownerID, p)
}

// stubDocuments backs the seed, wisdom and checkin services.
type stubDocuments[T any] struct {
	listFn   func(ctx context.Context, ownerID int64) ([]T, error)
	putFn    func(ctx context.Context, ownerID int64, item T) (models.UpsertResult, error)
	syncFn   func(ctx context.Context, ownerID int64, items []T) (models.SyncResult, error)
	deleteFn func(ctx context.Context, ownerID int64, clientSideID string) error
}

func (s *stubDocuments[T]) List(ctx context.Context, ownerID int64) ([]T, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubDocuments[T]) Put(ctx context.Context, ownerID int64, item T) (models.UpsertResult, error) {
	return s.putFn(ctx, ownerID, item)
}

func (s *stubDocuments[T]) Sync(ctx context.Context, ownerID int64, items []T) (models.SyncResult, error) {
	return s.syncFn(ctx, ownerID, items)
}

func (s *stubDocuments[T]) Delete(ctx context.Context, ownerID int64, clientSideID string) error {
	return s.deleteFn(ctx, ownerID, clientSideID)
}

type stubMessageService struct {
	listFn  func(ctx context.Context, ownerID int64, guruID string) ([]models.Message, error)
	addFn   func(ctx context.Context, ownerID int64, msg models.Message) (models.UpsertResult, error)
	syncFn  func(ctx context.Context, ownerID int64, msgs []models.Message) (models.SyncResult, error)
	clearFn func(ctx context.Context, ownerID int64) (int64, error)
}

func (s *stubMessageService) List(ctx context.Context, ownerID int64, guruID string) ([]models.Message, error) {
	return s.listFn(ctx, ownerID, guruID)
}

func (s *stubMessageService) Add(ctx context.Context, ownerID int64, msg models.Message) (models.UpsertResult, error) {
	return s.addFn(ctx, ownerID, msg)
}

func (s *stubMessageService) Sync(ctx context.Context, ownerID int64, msgs []models.Message) (models.SyncResult, error) {
	return s.syncFn(ctx, ownerID, msgs)
}

func (s *stubMessageService) Clear(ctx context.Context, ownerID int64) (int64, error) {
	return s.clearFn(ctx, ownerID)
}

type stubAppInfoService struct{ version string }

func (s *stubAppInfoService) GetAppVersion(context.Context) string { return s.version }

func newTestHandler(svcs *service.Services) *Handler {
	return &Handler{services: svcs, logger: logger.Nop()}
}

// withOwner returns r carrying a nop logger and the given owner id, as the
// trace and auth middlewares would leave it.
func withOwner(r *http.Request, owner int64) *http.Request {
	ctx := logger.Nop().WithContext(r.Context())
	ctx = context.WithValue(ctx, utils.OwnerIDCtxKey, owner)
	return r.WithContext(ctx)
}

func withNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func serve(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}
