package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"besinrehberi/internal/category"
)

// CategoryGroups serves every main category with its subcategories.
func (a *API) CategoryGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := a.groups.Groups()
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// ResolveCategory maps the slugs of a category page URL back to display
// names. The subcategory segment is optional but, when present, must
// belong to the resolved main category.
func (a *API) ResolveCategory(w http.ResponseWriter, r *http.Request) {
	groups, err := a.groups.Groups()
	if err != nil {
		fail(w, r, err)
		return
	}

	res, ok := category.Resolve(chi.URLParam(r, "category"), chi.URLParam(r, "subcategory"), groups)
	if !ok {
		writeError(w, http.StatusNotFound, "kategori bulunamadı")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
