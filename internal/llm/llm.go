// Package llm talks to an OpenRouter-compatible generation provider: it
// fills prompt templates, issues chat completions and lists models.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/config"
	"github.com/joestump/content-genius/internal/store"
)

// NoContentMessage is returned in place of content when the provider
// answers successfully but with an empty message.
const NoContentMessage = "Error: No content generated from the AI model"

// ErrNoContent is returned when choices[0].message.content is missing or empty.
var ErrNoContent = errors.New("no content generated from the AI model")

// UpstreamError is a non-200 answer from the provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Error generating content: %d - %s", e.StatusCode, e.Body)
}

// Message renders a generation error the way it is shown to clients.
func Message(err error) string {
	var upstream *UpstreamError
	switch {
	case errors.As(err, &upstream):
		return upstream.Error()
	case errors.Is(err, ErrNoContent):
		return NoContentMessage
	default:
		return "Error: " + err.Error()
	}
}

// Generator produces content for a filled template.
type Generator interface {
	Generate(ctx context.Context, tpl *store.Template, fields Fields, modelName string) (string, error)
}

// Catalog lists the selectable models.
type Catalog interface {
	ListModels(ctx context.Context) []ModelDescriptor
}

// Client is the OpenRouter implementation of Generator and Catalog.
type Client struct {
	apiKey  string
	baseURL string
	referer string
	title   string
	client  *http.Client
	log     *zap.Logger
}

var (
	_ Generator = (*Client)(nil)
	_ Catalog   = (*Client)(nil)
)

// NewClient builds an OpenRouter client from the LLM section of cfg.
func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		apiKey:  cfg.LLM.APIKey,
		baseURL: cfg.LLM.BaseURL,
		referer: cfg.LLM.Referer,
		title:   cfg.LLM.Title,
		client:  &http.Client{Timeout: cfg.LLM.Timeout},
		log:     log,
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}
}
