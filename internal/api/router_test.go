package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediascribe/mediascribe/internal/config"
	"github.com/mediascribe/mediascribe/internal/stt"
)

type staticFetcher struct{ err error }

func (f *staticFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "/nonexistent/media.mp3", nil
}

type staticProvider struct{}

func (staticProvider) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	return &stt.Result{Text: "ok", Language: "en", Segments: []stt.Segment{}}, nil
}

func (staticProvider) Name() string { return "static" }

func newTestHandler(fetchErr error) http.Handler {
	cfg := &config.Config{}
	cfg.STT.DefaultModel = "base"
	return NewRouter(cfg, &staticFetcher{err: fetchErr}, staticProvider{}).Setup()
}

func TestRouterRoutes(t *testing.T) {
	h := newTestHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterTranscribeEndToEnd(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/transcribe",
		strings.NewReader(`{"url": "https://example.com/a.mp3"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text": "ok", "language": "en", "segments": []}`, rec.Body.String())
}

func TestRouterTranscribeDownloadError(t *testing.T) {
	h := newTestHandler(errors.New("host unreachable"))

	req := httptest.NewRequest(http.MethodPost, "/transcribe",
		strings.NewReader(`{"url": "https://example.com/a.mp3"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "host unreachable")
}

func TestRouterCORSPreflight(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodOptions, "/transcribe", nil)
	req.Header.Set("Origin", "https://frontend.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://frontend.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
