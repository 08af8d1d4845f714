package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
)

// Chart API endpoints.
const (
	chartPath        = "/api/chart"
	basicChartPath   = "/api/chart/basic"
	dashaPath        = "/api/dasha"
	interpretPath    = "/api/interpret"
	chatPath         = "/api/chat/v2"
	chatFollowUpPath = "/api/chat"
	synastryPath     = "/api/synastry"
	alignmentPath    = "/api/alignment"
)

type httpChartAPI struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPChartAPI constructs the REST implementation of [ChartAPI] against
// cfg.ChartAPIAddress.
func NewHTTPChartAPI(cfg config.Adapter, logger *logger.Logger) (ChartAPI, error) {
	client, err := newRestClient(cfg.ChartAPIAddress, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &httpChartAPI{client: client, logger: logger}, nil
}

func (a *httpChartAPI) Chart(ctx context.Context, params models.ChartParams) (*models.ChartResponse, error) {
	return post[models.ChartResponse](ctx, a, chartPath, params)
}

func (a *httpChartAPI) BasicChart(ctx context.Context, params models.ChartParams) (*models.DivisionalChart, error) {
	return post[models.DivisionalChart](ctx, a, basicChartPath, params)
}

func (a *httpChartAPI) Dasha(ctx context.Context, params models.ChartParams) (*models.DashaResponse, error) {
	return post[models.DashaResponse](ctx, a, dashaPath, params)
}

func (a *httpChartAPI) Interpret(ctx context.Context, params models.ChartParams, structured bool) (*models.Interpretation, error) {
	return post[models.Interpretation](ctx, a, interpretPath+"?structured="+strconv.FormatBool(structured), params)
}

func (a *httpChartAPI) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if req.History == nil {
		req.History = []models.ChatTurn{}
	}
	return post[models.ChatResponse](ctx, a, chatPath, req)
}

func (a *httpChartAPI) ChatFollowUp(ctx context.Context, req models.ChatFollowUpRequest) (*models.ChatResponse, error) {
	return post[models.ChatResponse](ctx, a, chatFollowUpPath, req)
}

func (a *httpChartAPI) Synastry(ctx context.Context, req models.SynastryRequest) (*models.SynastryResponse, error) {
	if n := len(req.People); n < models.SynastryMinPeople || n > models.SynastryMaxPeople {
		return nil, fmt.Errorf("%w: synastry needs %d to %d people, got %d",
			ErrBadRequest, models.SynastryMinPeople, models.SynastryMaxPeople, n)
	}
	return post[models.SynastryResponse](ctx, a, synastryPath, req)
}

func (a *httpChartAPI) Alignment(ctx context.Context, params models.ChartParams) (*models.AlignmentResponse, error) {
	return post[models.AlignmentResponse](ctx, a, alignmentPath, params)
}

func post[T any](ctx context.Context, a *httpChartAPI, path string, body any) (*T, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpChartAPI.post").Str("path", path).Msg("chart api request failed")
		return nil, fmt.Errorf("%s request: %w", path, err)
	}

	out, err := decode[T](resp, path)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
