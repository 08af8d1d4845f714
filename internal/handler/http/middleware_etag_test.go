package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithETag(t *testing.T) {
	body := `[{"client_side_id":"s1"}]`
	handler := withETag(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/seeds", nil))

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, body, first.Body.String())
	tag := first.Header().Get("ETag")
	require.NotEmpty(t, tag)
	assert.Equal(t, byte('"'), tag[0])

	t.Run("matching tag", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/seeds", nil)
		req.Header.Set("If-None-Match", `"other", `+tag)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotModified, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("stale tag", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/seeds", nil)
		req.Header.Set("If-None-Match", `"stale"`)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, body, rec.Body.String())
	})

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/seeds", nil)
		req.Header.Set("If-None-Match", "*")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotModified, rec.Code)
	})
}

func TestWithETag_ErrorPassesThrough(t *testing.T) {
	handler := withETag(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "nope\n", rec.Body.String())
	assert.Empty(t, rec.Header().Get("ETag"))
}
