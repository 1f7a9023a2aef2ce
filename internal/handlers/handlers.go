package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/aisb-selection/aisb/internal/auth"
	"github.com/aisb-selection/aisb/internal/config"
	"github.com/aisb-selection/aisb/internal/middleware"
	"github.com/aisb-selection/aisb/internal/templates/layouts"
	"github.com/aisb-selection/aisb/internal/theme"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	sessions *auth.SessionStore
	authn    *auth.Authenticator
	github   *auth.GitHubOAuth // nil when GitHub sign-in is not configured
	metrics  *middleware.Metrics
	logger   *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(
	cfg *config.Config,
	sessions *auth.SessionStore,
	authn *auth.Authenticator,
	github *auth.GitHubOAuth,
	metrics *middleware.Metrics,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		config:   cfg,
		sessions: sessions,
		authn:    authn,
		github:   github,
		metrics:  metrics,
		logger:   logger,
	}
}

// themeController binds a theme controller to the request's cookies and
// client hints, writing to doc.
func (h *Handlers) themeController(w http.ResponseWriter, r *http.Request, doc *theme.Document) *theme.Controller {
	return theme.NewController(
		theme.NewCookieStore(w, r, h.config.IsProduction()),
		theme.NewClientHintScheme(r),
		doc,
	)
}

// writePage renders a full HTML document with the given status.
func (h *Handlers) writePage(ctx context.Context, w http.ResponseWriter, status int, title string, doc *theme.Document, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := layouts.Document(title, doc, body).Render(ctx, w); err != nil {
		h.logger.Error("failed to render page", "title", title, "error", err)
	}
}
