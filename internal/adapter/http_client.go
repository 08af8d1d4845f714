package adapter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/vedicas-garden/internal/utils"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 30 * time.Second

// newRestClient builds a JSON resty client for a normalised base URL.
func newRestClient(rawURL string, timeout time.Duration) (*utils.HTTPClient, error) {
	baseURL, err := normalizeBaseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return utils.NewHTTPClientWithBase(baseURL, timeout), nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// decode maps the status and unmarshals a successful body into out.
func decode[T any](resp *resty.Response, what string) (T, error) {
	var out T
	if err := mapHTTPError(resp); err != nil {
		return out, err
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("%w: %s: %w", ErrDecodingResponse, what, err)
	}
	return out, nil
}
