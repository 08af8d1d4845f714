package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/MKhiriev/vedicas-garden/models"
)

const cacheKeyPrefix = "vedicas:chart:"

// cachedChartAPI serves Chart, BasicChart and Dasha from a cache. The other
// endpoints depend on the current moment or an LLM and always go through.
type cachedChartAPI struct {
	ChartAPI
	cache Cache
	ttl   time.Duration
}

// NewCachedChartAPI decorates next with cache. Cache failures are logged and
// fall through to next.
func NewCachedChartAPI(next ChartAPI, cache Cache, ttl time.Duration) ChartAPI {
	return &cachedChartAPI{ChartAPI: next, cache: cache, ttl: ttl}
}

func (c *cachedChartAPI) Chart(ctx context.Context, params models.ChartParams) (*models.ChartResponse, error) {
	return cached(ctx, c, chartPath, params, c.ChartAPI.Chart)
}

func (c *cachedChartAPI) BasicChart(ctx context.Context, params models.ChartParams) (*models.DivisionalChart, error) {
	return cached(ctx, c, basicChartPath, params, c.ChartAPI.BasicChart)
}

func (c *cachedChartAPI) Dasha(ctx context.Context, params models.ChartParams) (*models.DashaResponse, error) {
	return cached(ctx, c, dashaPath, params, c.ChartAPI.Dasha)
}

func cacheKey(endpoint string, params models.ChartParams) (string, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	return cacheKeyPrefix + utils.Fingerprint([]byte(endpoint), body), nil
}

func cached[T any](
	ctx context.Context,
	c *cachedChartAPI,
	endpoint string,
	params models.ChartParams,
	fetch func(context.Context, models.ChartParams) (*T, error),
) (*T, error) {
	log := logger.FromContext(ctx)

	key, err := cacheKey(endpoint, params)
	if err != nil {
		return fetch(ctx, params)
	}

	raw, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var out T
		if jsonErr := json.Unmarshal(raw, &out); jsonErr == nil {
			log.Debug().Str("endpoint", endpoint).Msg("chart cache hit")
			return &out, nil
		}
		log.Warn().Str("endpoint", endpoint).Msg("discarding undecodable cache entry")
	case !errors.Is(err, ErrCacheMiss):
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("chart cache unavailable")
	}

	out, err := fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	if raw, err = json.Marshal(out); err == nil {
		if err = c.cache.Set(ctx, key, raw, c.ttl); err != nil {
			log.Warn().Err(err).Str("endpoint", endpoint).Msg("failed to store chart in cache")
		}
	}
	return out, nil
}
