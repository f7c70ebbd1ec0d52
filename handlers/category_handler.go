package handlers

import (
	"net/http"

	"poimap/models"
	"poimap/repository"
)

type CategoryHandler struct {
	Repo repository.CategoryRepository
}

// ListCategories returns the catalog sorted by id. Public reference data:
// no authentication required.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Repo.ListCategories()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}
