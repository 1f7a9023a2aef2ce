package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aisb-selection/aisb/internal/domain"
	"github.com/aisb-selection/aisb/internal/middleware"
	"github.com/aisb-selection/aisb/internal/navigation"
	"github.com/aisb-selection/aisb/internal/shell"
)

// Mount registers the public and admin routes on r. Session loading is
// expected to run before these routes.
func (h *Handlers) Mount(r chi.Router) {
	r.Get("/", h.Home)

	r.Route(domain.AdminRoot, func(r chi.Router) {
		r.Use(middleware.ColorSchemeHints)
		r.NotFound(middleware.RequireAdmin(shell.LoginPath)(http.HandlerFunc(h.NotFound)).ServeHTTP)

		r.Get(strings.TrimPrefix(shell.LoginPath, domain.AdminRoot), h.Login)
		r.Post(strings.TrimPrefix(shell.LoginPath, domain.AdminRoot), h.LoginSubmit)
		r.Post("/logout", h.Logout)
		r.Get("/auth/github", h.GitHubStart)
		r.Get("/auth/callback", h.GitHubCallback)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(shell.LoginPath))

			r.Post("/theme", h.ToggleTheme)

			for _, item := range navigation.Items(navigation.AdminGroups()) {
				sub := strings.TrimPrefix(item.URL, domain.AdminRoot)
				if sub == "" {
					sub = "/"
					// The public navbar links here.
					r.Get("/dashboard", h.Section(item))
				}
				r.Get(sub, h.Section(item))
			}
		})
	})
}
