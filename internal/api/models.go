package api

import (
	"net/http"

	"github.com/joestump/content-genius/internal/llm"
)

type modelsAPIHandler struct {
	catalog llm.Catalog
}

// List returns the selectable models.
// GET /api/models
//
// @Summary      List models
// @Description  Allow-listed models offered by the provider, or the static catalog when the provider is unreachable
// @Tags         Models
// @Produce      json
// @Success      200  {object}  ModelListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /models [get]
func (h *modelsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ModelListResponse{
		Success: true,
		Models:  h.catalog.ListModels(r.Context()),
	})
}
