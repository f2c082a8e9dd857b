package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careermate/careermate-api/internal/ai"
	"github.com/careermate/careermate-api/internal/config"
	"github.com/careermate/careermate-api/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the alternate text-generation gateway, selected with
// AI_PROVIDER=openrouter. It speaks the OpenAI-compatible chat completions
// API and applies the same failure taxonomy as the Gemini gateway.
type OpenRouterService struct {
	client *resty.Client
	apiKey string
	model  string
	log    *zap.Logger
}

func NewOpenRouterService(log *zap.Logger) (*OpenRouterService, error) {
	cfg := config.LoadOpenRouterConfig()
	if cfg.APIKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY not set")
	}
	return &OpenRouterService{
		client: resty.New(),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		log:    log,
	}, nil
}

// GenerateContent sends one prompt as a single-turn chat completion.
func (s *OpenRouterService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt cannot be empty")
	}

	s.log.Debug("openrouter generate content request",
		zap.String("model", s.model),
		zap.Int("prompt_length", len(prompt)),
		zap.String("prompt_preview", logger.Truncate(prompt, logPreviewLen)),
	)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		// Transport-level failures (DNS, refused connections, timeouts) are
		// all Unavailable for policy purposes.
		return "", ai.NewProviderError(ai.FailureUnavailable, err)
	}

	if resp.IsError() {
		return "", classifyStatus(resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", ai.NewProviderError(ai.FailureUnknown, errors.New("empty response from model"))
	}

	s.log.Debug("openrouter generate content response",
		zap.Int("response_length", len(text)),
		zap.String("response_preview", logger.Truncate(text, logPreviewLen)),
	)

	return text, nil
}

func classifyStatus(status int, body string) *ai.ProviderError {
	err := fmt.Errorf("openrouter returned status %d: %s", status, logger.Truncate(body, logPreviewLen))
	switch {
	case status == 429:
		return ai.NewProviderError(ai.FailureQuotaExceeded, err)
	case status == 401 || status == 403:
		return ai.NewProviderError(ai.FailureInvalidCredentials, err)
	case status >= 500:
		return ai.NewProviderError(ai.FailureUnavailable, err)
	default:
		return ai.NewProviderError(ai.FailureUnknown, err)
	}
}
