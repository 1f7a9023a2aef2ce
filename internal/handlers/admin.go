package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/aisb-selection/aisb/internal/middleware"
	"github.com/aisb-selection/aisb/internal/navigation"
	"github.com/aisb-selection/aisb/internal/shell"
	"github.com/aisb-selection/aisb/internal/templates/pages"
	"github.com/aisb-selection/aisb/internal/theme"
)

// sectionDescriptions is the lead line of each admin section, by URL.
var sectionDescriptions = map[string]string{
	"/admin":              "Overview of the selection program.",
	"/admin/students":     "Registered students and their application status.",
	"/admin/upload":       "Upload quiz questions from an Excel workbook.",
	"/admin/quiz":         "Questions and settings of the selection quiz.",
	"/admin/quiz-results": "Scores and rankings from the selection quiz.",
	"/admin/videos":       "Video contest submissions awaiting review.",
	"/admin/winners":      "Winners of the video contest.",
	"/admin/settings":     "Administrative settings.",
}

// renderAdmin renders content inside the admin layout. The request path
// decides whether the chrome is drawn; the theme is only resolved when it
// is, since the navbar owns the toggle.
func (h *Handlers) renderAdmin(w http.ResponseWriter, r *http.Request, status int, title, active string, content templ.Component) {
	mode := shell.ModeFor(r.URL.Path)
	doc := theme.NewDocument()

	var navbar templ.Component
	if mode == shell.Chrome {
		ctrl := h.themeController(w, r, doc)
		ctrl.Init()

		view := pages.AdminNavbarView{
			Groups:   navigation.AdminGroups(),
			Active:   active,
			Theme:    ctrl.Current(),
			ReturnTo: r.URL.Path,
		}
		if session := middleware.GetSession(r.Context()); session != nil {
			view.AdminName = session.DisplayName()
		}
		navbar = pages.AdminNavbar(view)
	}

	h.writePage(r.Context(), w, status, title+" | "+navigation.AdminBrand, doc, shell.Layout(mode, navbar, content))
}

// Section returns a handler rendering the admin page for item.
func (h *Handlers) Section(item navigation.Item) http.HandlerFunc {
	content := pages.AdminSection(item.Title, sectionDescriptions[item.URL])
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderAdmin(w, r, http.StatusOK, item.Title, item.URL, content)
	}
}

// NotFound renders the admin 404 page. Unknown admin paths keep the chrome
// so the navbar stays available.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	content := pages.AdminSection("Not found", "There is no admin page at "+r.URL.Path+".")
	h.renderAdmin(w, r, http.StatusNotFound, "Not found", "", content)
}

// ToggleTheme flips the admin theme, persists it and sends the browser
// back to the page it came from.
func (h *Handlers) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ctrl := h.themeController(w, r, nil)
	ctrl.Init()
	next := ctrl.Toggle()

	h.metrics.ThemeToggled(next.String())
	h.logger.Debug("theme toggled", "theme", next.String())

	http.Redirect(w, r, safeReturnPath(r.FormValue("return_to")), http.StatusSeeOther)
}
