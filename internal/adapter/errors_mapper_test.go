package adapter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "ok", status: http.StatusOK, body: "{}"},
		{name: "no content", status: http.StatusNoContent},
		{name: "plain body", status: http.StatusConflict, body: "login already exists\n", wantErr: ErrConflict, wantMsg: "conflict: login already exists"},
		{name: "detail object", status: http.StatusInternalServerError, body: `{"detail":"swisseph failed"}`, wantErr: ErrInternalServerError, wantMsg: "internal server error: swisseph failed"},
		{name: "empty body", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable, wantMsg: "service unavailable: Service Unavailable"},
		{name: "too large", status: http.StatusRequestEntityTooLarge, body: "payload too large\n", wantErr: ErrPayloadTooLarge, wantMsg: "payload too large: payload too large"},
		{name: "unmapped", status: http.StatusTeapot, body: "", wantMsg: "http 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseWith(t, tt.status, tt.body))
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
