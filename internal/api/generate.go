package api

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/llm"
)

type generateAPIHandler struct {
	templates TemplateAccessor
	generator llm.Generator
	strict    bool
	log       *zap.Logger
}

// Generate fills the requested template with the posted form fields and
// relays it to the selected model.
// POST /api/generate
//
// Provider failures are reported as a success envelope whose content is the
// error text, unless strict errors are enabled.
//
// @Summary      Generate content
// @Description  Substitutes form fields into the template named by contentType and sends it to aiModel
// @Tags         Generate
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "contentType, aiModel and template form fields"
// @Success      200      {object}  GenerateResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /generate [post]
func (h *generateAPIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r.Body)
	if err != nil {
		h.log.Warn("api: generate: bad body", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	templateID, _ := fields.Get(llm.TemplateKey)
	modelName, _ := fields.Get(llm.ModelKey)

	tpl, ok := h.templates.Get(r.Context(), templateID)
	if !ok {
		h.log.Info("api: generate: unknown template", zap.String("template_id", templateID))
		writeError(w, http.StatusNotFound, fmt.Sprintf("Template %s not found", templateID))
		return
	}

	if !h.strict {
		writeJSON(w, http.StatusOK, GenerateResponse{
			Success: true,
			Content: llm.Text(r.Context(), h.generator, tpl, fields, modelName),
		})
		return
	}

	content, err := h.generator.Generate(r.Context(), tpl, fields, modelName)
	if err != nil {
		writeError(w, http.StatusBadGateway, llm.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, GenerateResponse{Success: true, Content: content})
}
