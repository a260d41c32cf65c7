package api

import "net/http"

type templatesAPIHandler struct {
	templates TemplateAccessor
}

// List returns every available template.
// GET /api/templates
//
// @Summary      List templates
// @Description  Templates from the store, or the built-in templates when the store is unavailable
// @Tags         Templates
// @Produce      json
// @Success      200  {object}  TemplateListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /templates [get]
func (h *templatesAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TemplateListResponse{
		Success:   true,
		Templates: h.templates.List(r.Context()),
	})
}
