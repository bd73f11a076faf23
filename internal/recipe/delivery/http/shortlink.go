package http

import (
	"net/http"

	"github.com/foodgram/foodgram-backend/internal/recipe/usecase/query"
)

// ShortLinkRedirect handles GET /s/{id}/ and redirects to the recipe page.
// Unknown ids answer 404 rather than redirecting to a dead page.
func (h *RecipeHandler) ShortLinkRedirect(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := h.repo.FindByID(id); err != nil {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, query.RedirectTarget(id), http.StatusFound)
}
