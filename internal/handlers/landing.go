package handlers

import (
	"net/http"

	"github.com/aisb-selection/aisb/internal/navigation"
	"github.com/aisb-selection/aisb/internal/templates/pages"
)

// Home renders the public landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.writePage(r.Context(), w, http.StatusOK, navigation.PublicBrand, nil, pages.Landing())
}
