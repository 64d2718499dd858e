package ai

import (
	"encoding/json"

	"github.com/gravity-ai/gravity-api/internal/logging"
	"go.uber.org/zap"
)

const maxLoggedQuery = 100

// Service returns placeholder results; no model backend is attached yet.
type Service struct {
	logger *logging.Logger
}

func NewService(logger *logging.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

func (s *Service) ProcessWebhook(req WebhookRequest) map[string]any {
	size := 0
	if raw, err := json.Marshal(req.Data); err == nil {
		size = len(raw)
	}
	s.logger.Info("WhatsApp webhook received", zap.Int("bytes", size))

	return map[string]any{
		"webhook_id":   "stub_webhook_123",
		"processed_at": "2024-01-01T00:00:00Z",
		"status":       "received",
	}
}

func (s *Service) Embed(req EmbedRequest) map[string]any {
	req.applyDefaults()
	s.logger.Info("Embedding request", zap.Int("text_length", len(req.Text)))

	return map[string]any{
		"embedding_id": "stub_embedding_456",
		"dimensions":   768,
		"model":        req.Model,
		"text_length":  len(req.Text),
	}
}

func (s *Service) Ask(req AskRequest) map[string]any {
	req.applyDefaults()
	s.logger.Info("RAG query", zap.String("query", truncate(req.Query, maxLoggedQuery)))

	return map[string]any{
		"answer":     "This is a placeholder answer from the RAG system.",
		"confidence": 0.85,
		"sources":    []string{"doc_1", "doc_2"},
		"model":      req.Model,
		"query":      req.Query,
	}
}

func (s *Service) RunInsights(req InsightsRequest) map[string]any {
	req.applyDefaults()
	s.logger.Info("Insights analysis request", zap.String("analysis_type", req.AnalysisType))

	return map[string]any{
		"analysis_id": "stub_analysis_789",
		"type":        req.AnalysisType,
		"insights": []string{
			"Sample insight 1: Data shows positive trend",
			"Sample insight 2: Recommendation for improvement",
		},
		"confidence":         0.92,
		"processing_time_ms": 150,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
