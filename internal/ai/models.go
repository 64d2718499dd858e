package ai

const (
	DefaultEmbedModel   = "text-embedding-004"
	DefaultAskModel     = "gemini-pro"
	DefaultAnalysisType = "general"
)

type WebhookRequest struct {
	Data map[string]any `json:"data" validate:"required"`
}

type EmbedRequest struct {
	Text  string `json:"text" validate:"required"`
	Model string `json:"model"`
}

type AskRequest struct {
	Query   string `json:"query" validate:"required"`
	Context string `json:"context"`
	Model   string `json:"model"`
}

type InsightsRequest struct {
	Data         map[string]any `json:"data" validate:"required"`
	AnalysisType string         `json:"analysis_type"`
}

func (r *EmbedRequest) applyDefaults() {
	if r.Model == "" {
		r.Model = DefaultEmbedModel
	}
}

func (r *AskRequest) applyDefaults() {
	if r.Model == "" {
		r.Model = DefaultAskModel
	}
}

func (r *InsightsRequest) applyDefaults() {
	if r.AnalysisType == "" {
		r.AnalysisType = DefaultAnalysisType
	}
}
