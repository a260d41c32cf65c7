package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/metrics"
)

type modelsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ListModels returns the allow-listed models the provider currently offers.
// Any failure, or an answer naming none of them, yields the static catalog.
func (c *Client) ListModels(ctx context.Context) []ModelDescriptor {
	models, err := c.fetchModels(ctx)
	if err != nil {
		metrics.ModelCatalogFallbacksTotal.Inc()
		c.log.Warn("model listing failed, serving static catalog", zap.Error(err))
		return StaticCatalog()
	}
	if len(models) == 0 {
		metrics.ModelCatalogFallbacksTotal.Inc()
		c.log.Warn("provider offers none of the allow-listed models, serving static catalog")
		return StaticCatalog()
	}
	return models
}

func (c *Client) fetchModels(ctx context.Context) ([]ModelDescriptor, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(httpReq)

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	metrics.UpstreamDuration.WithLabelValues("models").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openrouter models returned %d", resp.StatusCode)
	}

	var apiResp modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	seen := make(map[string]bool)
	var models []ModelDescriptor
	for _, m := range apiResp.Data {
		d, ok := allowedModel(m.ID)
		if !ok || seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		models = append(models, d)
	}
	return models, nil
}
