package api

import (
	"github.com/joestump/content-genius/internal/llm"
	"github.com/joestump/content-genius/internal/store"
)

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Template press-release not found"`
}

// TemplateListResponse is the response for GET /api/templates.
type TemplateListResponse struct {
	Success   bool              `json:"success" example:"true"`
	Templates []*store.Template `json:"templates"`
}

// ModelListResponse is the response for GET /api/models.
type ModelListResponse struct {
	Success bool                  `json:"success" example:"true"`
	Models  []llm.ModelDescriptor `json:"models"`
}

// GenerateRequest documents the POST /api/generate body. Any other string
// keys are form fields substituted into the template prompt.
type GenerateRequest struct {
	ContentType string `json:"contentType" example:"blog-post"`
	AIModel     string `json:"aiModel" example:"GPT-4"`
	Topic       string `json:"topic,omitempty" example:"cats"`
}

// GenerateResponse is the response for POST /api/generate. Content may hold
// an error message when the provider call failed.
type GenerateResponse struct {
	Success bool   `json:"success" example:"true"`
	Content string `json:"content"`
}
