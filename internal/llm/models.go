package llm

// ModelName is the display name a client selects a model by.
type ModelName string

const (
	ModelGPT4          ModelName = "GPT-4"
	ModelClaude3Opus   ModelName = "Claude-3-Opus"
	ModelClaude3Sonnet ModelName = "Claude-3-Sonnet"
	ModelGeminiPro     ModelName = "Gemini Pro"
)

// ModelDescriptor describes a selectable generation backend.
type ModelDescriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

const defaultModelID = "openai/gpt-4o-mini"

// MapModelNameToID translates a display name to the provider's model id.
// Unknown names map to the GPT-4 entry.
func MapModelNameToID(name string) string {
	switch ModelName(name) {
	case ModelGPT4:
		return "openai/gpt-4o-mini"
	case ModelClaude3Opus:
		return "anthropic/claude-3-opus"
	case ModelClaude3Sonnet:
		return "anthropic/claude-3-sonnet"
	case ModelGeminiPro:
		return "google/gemini-pro"
	default:
		return defaultModelID
	}
}

// StaticCatalog returns the allow-listed models in display order.
func StaticCatalog() []ModelDescriptor {
	return []ModelDescriptor{
		{ID: "openai/gpt-4o-mini", Name: string(ModelGPT4), Provider: "OpenAI"},
		{ID: "anthropic/claude-3-opus", Name: string(ModelClaude3Opus), Provider: "Anthropic"},
		{ID: "anthropic/claude-3-sonnet", Name: string(ModelClaude3Sonnet), Provider: "Anthropic"},
		{ID: "google/gemini-pro", Name: string(ModelGeminiPro), Provider: "Google"},
	}
}

// allowedModel reports whether id is on the allow-list.
func allowedModel(id string) (ModelDescriptor, bool) {
	for _, m := range StaticCatalog() {
		if m.ID == id {
			return m, true
		}
	}
	return ModelDescriptor{}, false
}
