package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/careermate/careermate-api/internal/ai"
	"github.com/careermate/careermate-api/internal/config"
	"github.com/careermate/careermate-api/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Fixed generation profile for every assessment task.
const (
	genTemperature    = 0.7
	genTopK           = 40
	genTopP           = 0.95
	genMaxOutputToken = 8192
)

const logPreviewLen = 200

// GeminiService is the gateway to the Gemini API. It makes exactly one
// outbound call per invocation and returns either the raw response text or a
// classified provider failure. Retry policy belongs to callers.
type GeminiService struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGeminiService builds the gateway. A missing GEMINI_API_KEY is an
// initialization failure, not a per-request one.
func NewGeminiService(ctx context.Context, log *zap.Logger) (*GeminiService, error) {
	cfg := config.LoadGeminiConfig()
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  cfg.Model,
		log:    log,
	}, nil
}

// GenerateContent sends one prompt to Gemini and returns the response text.
func (s *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	s.log.Debug("gemini generate content request",
		zap.String("model", s.model),
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", logger.Truncate(prompt, logPreviewLen)),
	)

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(genTemperature)),
		TopK:            genai.Ptr(float32(genTopK)),
		TopP:            genai.Ptr(float32(genTopP)),
		MaxOutputTokens: genMaxOutputToken,
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ai.NewProviderError(ai.FailureUnknown, errors.New("empty response from model"))
	}

	s.log.Debug("gemini generate content response",
		zap.Int("response_length", len(text)),
		zap.String("response_preview", logger.Truncate(text, logPreviewLen)),
	)

	return text, nil
}

// GenerateEmbedding embeds text for job recommendation search.
func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New("text for embedding cannot be empty")
	}
	if len(trimmed) > 10000 {
		s.log.Warn("embedding input exceeds recommended length, truncating",
			zap.Int("length", len(trimmed)))
		trimmed = trimmed[:10000]
	}

	content := []*genai.Content{genai.NewContentFromText(trimmed, genai.RoleUser)}
	result, err := s.client.Models.EmbedContent(ctx, "gemini-embedding-001", content, nil)
	if err != nil {
		return nil, classifyGeminiError(err)
	}

	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, ai.NewProviderError(ai.FailureUnknown, errors.New("no embeddings returned"))
	}
	values := result.Embeddings[0].Values
	for i, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil, ai.NewProviderError(ai.FailureUnknown,
				fmt.Errorf("invalid embedding value at index %d: %v", i, v))
		}
	}
	return values, nil
}

// classifyGeminiError maps SDK and transport errors onto the provider
// failure taxonomy. Timeouts count as Unavailable so callers can apply
// retry-or-fallback policy.
func classifyGeminiError(err error) *ai.ProviderError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return ai.NewProviderError(ai.FailureQuotaExceeded, err)
		case 401, 403:
			return ai.NewProviderError(ai.FailureInvalidCredentials, err)
		case 500, 502, 503, 504:
			return ai.NewProviderError(ai.FailureUnavailable, err)
		default:
			return ai.NewProviderError(ai.FailureUnknown, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ai.NewProviderError(ai.FailureUnavailable, err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "temporary failure"),
		strings.Contains(msg, "EOF"):
		return ai.NewProviderError(ai.FailureUnavailable, err)
	case strings.Contains(msg, "quota"):
		return ai.NewProviderError(ai.FailureQuotaExceeded, err)
	case strings.Contains(msg, "API key"), strings.Contains(msg, "API_KEY"):
		return ai.NewProviderError(ai.FailureInvalidCredentials, err)
	}

	return ai.NewProviderError(ai.FailureUnknown, err)
}
