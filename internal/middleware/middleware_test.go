package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aisb-selection/aisb/internal/auth"
	"github.com/aisb-selection/aisb/internal/middleware"
	"github.com/aisb-selection/aisb/internal/theme"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func ok(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func TestRequireAdmin(t *testing.T) {
	sessions := auth.NewSessionStore(testSecret, time.Hour, false)
	handler := middleware.Session(sessions)(middleware.RequireAdmin("/admin/login")(http.HandlerFunc(ok)))

	// No session
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/admin/students", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	// Valid session
	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Set(rec, &auth.SessionData{AdminID: uuid.New(), Email: "admin@aisb.example"}))
	req := httptest.NewRequest("GET", "/admin/students", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestSession_LoadsIntoContext(t *testing.T) {
	sessions := auth.NewSessionStore(testSecret, time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Set(rec, &auth.SessionData{Email: "admin@aisb.example"}))
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	var got *auth.SessionData
	middleware.Session(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetSession(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "admin@aisb.example", got.Email)
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/teapot", nil))

	line := buf.String()
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"size":15`)
	assert.Contains(t, line, `"path":"/teapot"`)
	assert.Contains(t, line, `"level":"INFO"`)
}

func TestColorSchemeHints(t *testing.T) {
	w := httptest.NewRecorder()
	middleware.ColorSchemeHints(http.HandlerFunc(ok)).ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, theme.ClientHintHeader, w.Header().Get("Accept-CH"))
	assert.Contains(t, w.Header().Values("Vary"), theme.ClientHintHeader)
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry, "aisb")

	r := chi.NewRouter()
	r.Use(metrics.Handler)
	r.Get("/admin/{section}", ok)

	for _, path := range []string{"/admin/quiz", "/admin/videos"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	metrics.ThemeToggled("dark")
	metrics.SignIn("password", false)

	expected := `
# HELP aisb_http_requests_total Total number of HTTP requests
# TYPE aisb_http_requests_total counter
aisb_http_requests_total{method="GET",route="/admin/{section}",status="200"} 2
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "aisb_http_requests_total"))

	expected = `
# HELP aisb_theme_toggles_total Total number of admin theme toggles by resulting theme
# TYPE aisb_theme_toggles_total counter
aisb_theme_toggles_total{theme="dark"} 1
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "aisb_theme_toggles_total"))
}
