package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/go-resty/resty/v2"
)

type httpRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the REST implementation of [RemoteStore]
// against cfg.HTTPAddress.
func NewHTTPRemoteStore(cfg config.Adapter, logger *logger.Logger) (RemoteStore, error) {
	client, err := newRestClient(cfg.HTTPAddress, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &httpRemoteStore{client: client, logger: logger}, nil
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteStore) Register(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpRemoteStore) Login(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// authenticate posts credentials and turns the returned bearer token into a
// session. The owner id is read from the token subject.
func (h *httpRemoteStore) authenticate(ctx context.Context, path string, user models.User) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	ownerID, err := utils.ParseOwnerIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse owner id: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "httpRemoteStore.authenticate").Int64("owner_id", ownerID).Msg("signed in")

	return models.Session{OwnerID: ownerID, Login: user.Login, Token: token}, nil
}

func (h *httpRemoteStore) GetProfile(ctx context.Context) (*models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profile")
	if err != nil {
		return nil, fmt.Errorf("get profile request: %w", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	profile, err := decode[models.Profile](resp, "profile")
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *httpRemoteStore) PutProfile(ctx context.Context, profile models.Profile) (models.UpsertResult, error) {
	resp, err := h.authedRequest(ctx).SetBody(profile).Put("/api/profile")
	if err != nil {
		return models.UpsertResult{}, fmt.Errorf("put profile request: %w", err)
	}
	return decode[models.UpsertResult](resp, "profile upsert")
}

func (h *httpRemoteStore) ListSeeds(ctx context.Context) ([]models.Seed, error) {
	return list[models.Seed](ctx, h, "/api/seeds")
}

func (h *httpRemoteStore) SyncSeeds(ctx context.Context, seeds []models.Seed) (models.SyncResult, error) {
	return h.sync(ctx, "/api/seeds/sync", models.SeedsSyncRequest{Seeds: seeds})
}

func (h *httpRemoteStore) DeleteSeed(ctx context.Context, clientSideID string) error {
	return h.delete(ctx, "/api/seeds/"+url.PathEscape(clientSideID))
}

func (h *httpRemoteStore) ListWisdom(ctx context.Context) ([]models.WisdomNote, error) {
	return list[models.WisdomNote](ctx, h, "/api/wisdom")
}

func (h *httpRemoteStore) SyncWisdom(ctx context.Context, notes []models.WisdomNote) (models.SyncResult, error) {
	return h.sync(ctx, "/api/wisdom/sync", models.WisdomSyncRequest{Notes: notes})
}

func (h *httpRemoteStore) DeleteWisdom(ctx context.Context, clientSideID string) error {
	return h.delete(ctx, "/api/wisdom/"+url.PathEscape(clientSideID))
}

func (h *httpRemoteStore) ListMessages(ctx context.Context, guruID string) ([]models.Message, error) {
	path := "/api/messages"
	if guruID != "" {
		path += "?guru_id=" + url.QueryEscape(guruID)
	}
	return list[models.Message](ctx, h, path)
}

func (h *httpRemoteStore) SyncMessages(ctx context.Context, msgs []models.Message) (models.SyncResult, error) {
	return h.sync(ctx, "/api/messages/sync", models.MessagesSyncRequest{Messages: msgs})
}

func (h *httpRemoteStore) ClearMessages(ctx context.Context) (int64, error) {
	resp, err := h.authedRequest(ctx).Delete("/api/messages")
	if err != nil {
		return 0, fmt.Errorf("clear messages request: %w", err)
	}

	res, err := decode[models.ClearResult](resp, "clear messages")
	if err != nil {
		return 0, err
	}
	return res.Deleted, nil
}

func (h *httpRemoteStore) ListCheckins(ctx context.Context) ([]models.Checkin, error) {
	return list[models.Checkin](ctx, h, "/api/checkins")
}

func (h *httpRemoteStore) SyncCheckins(ctx context.Context, checkins []models.Checkin) (models.SyncResult, error) {
	return h.sync(ctx, "/api/checkins/sync", models.CheckinsSyncRequest{Checkins: checkins})
}

func (h *httpRemoteStore) sync(ctx context.Context, path string, body any) (models.SyncResult, error) {
	resp, err := h.authedRequest(ctx).SetBody(body).Post(path)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("%s request: %w", path, err)
	}
	return decode[models.SyncResult](resp, path)
}

func (h *httpRemoteStore) delete(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func list[T any](ctx context.Context, h *httpRemoteStore, path string) ([]T, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", path, err)
	}

	items, err := decode[[]T](resp, path)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
