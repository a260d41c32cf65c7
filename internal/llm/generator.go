package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/metrics"
	"github.com/joestump/content-genius/internal/store"
)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// buildRequest fills the template and assembles the two-message chat
// request for it.
func buildRequest(tpl *store.Template, fields Fields, modelName string) chatRequest {
	ct := ContentBlogPost
	if v, ok := fields.Get(TemplateKey); ok {
		ct = ContentType(v)
	}
	return chatRequest{
		Model: MapModelNameToID(modelName),
		Messages: []chatMessage{
			{Role: "system", Content: Instruction(ct)},
			{Role: "user", Content: Substitute(tpl.Prompt, fields)},
		},
	}
}

// Generate sends the filled template to the provider and returns the
// generated text.
func (c *Client) Generate(ctx context.Context, tpl *store.Template, fields Fields, modelName string) (string, error) {
	body := buildRequest(tpl, fields, modelName)
	log := c.log.With(
		zap.String("generation_id", uuid.NewString()),
		zap.String("template_id", tpl.ID),
		zap.String("model", body.Model),
	)

	content, err := c.chatCompletion(ctx, body, log)
	outcome := "ok"
	if err != nil {
		outcome = outcomeOf(err)
		log.Warn("generation failed", zap.String("outcome", outcome), zap.Error(err))
	}
	metrics.GenerationsTotal.WithLabelValues(body.Model, outcome).Inc()
	return content, err
}

// Text runs g and folds any failure into the returned string, so the
// result can be handed to the client as content either way.
func Text(ctx context.Context, g Generator, tpl *store.Template, fields Fields, modelName string) string {
	content, err := g.Generate(ctx, tpl, fields, modelName)
	if err != nil {
		return Message(err)
	}
	return content
}

func (c *Client) chatCompletion(ctx context.Context, body chatRequest, log *zap.Logger) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(httpReq)

	log.Debug("sending chat completion", zap.String("url", url), zap.String("prompt", body.Messages[1].Content))

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	metrics.UpstreamDuration.WithLabelValues("chat_completions").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	log.Debug("chat completion response", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", ErrNoContent
	}
	return apiResp.Choices[0].Message.Content, nil
}

func outcomeOf(err error) string {
	var upstream *UpstreamError
	switch {
	case errors.As(err, &upstream):
		return "upstream_error"
	case errors.Is(err, ErrNoContent):
		return "no_content"
	default:
		return "error"
	}
}
