package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/careermate/careermate-api/internal/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestClassifyGeminiError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ai.FailureKind
	}{
		{
			"quota status",
			genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"},
			ai.FailureQuotaExceeded,
		},
		{
			"unauthorized status",
			genai.APIError{Code: http.StatusUnauthorized, Status: "UNAUTHENTICATED"},
			ai.FailureInvalidCredentials,
		},
		{
			"forbidden status",
			genai.APIError{Code: http.StatusForbidden, Status: "PERMISSION_DENIED"},
			ai.FailureInvalidCredentials,
		},
		{
			"server error status",
			genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE"},
			ai.FailureUnavailable,
		},
		{
			"wrapped api error",
			fmt.Errorf("generate content: %w", genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}),
			ai.FailureUnavailable,
		},
		{
			"unexpected status",
			genai.APIError{Code: http.StatusTeapot, Status: "TEAPOT"},
			ai.FailureUnknown,
		},
		{
			"deadline exceeded",
			fmt.Errorf("call: %w", context.DeadlineExceeded),
			ai.FailureUnavailable,
		},
		{
			"connection refused message",
			errors.New("dial tcp 10.0.0.1:443: connect: connection refused"),
			ai.FailureUnavailable,
		},
		{
			"quota message",
			errors.New("quota exceeded for requests per minute"),
			ai.FailureQuotaExceeded,
		},
		{
			"api key message",
			errors.New("API key not valid. Please pass a valid API key"),
			ai.FailureInvalidCredentials,
		},
		{
			"anything else",
			errors.New("candidate blocked by safety settings"),
			ai.FailureUnknown,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			classified := classifyGeminiError(tc.err)
			require.NotNil(t, classified)
			assert.Equal(t, tc.want, classified.Kind)

			// The original API error must stay reachable through the wrap.
			var apiErr genai.APIError
			if errors.As(tc.err, &apiErr) {
				var unwrapped genai.APIError
				require.True(t, errors.As(classified, &unwrapped))
				assert.Equal(t, apiErr.Code, unwrapped.Code)
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, ai.FailureQuotaExceeded, classifyStatus(429, "slow down").Kind)
	assert.Equal(t, ai.FailureInvalidCredentials, classifyStatus(401, "bad key").Kind)
	assert.Equal(t, ai.FailureInvalidCredentials, classifyStatus(403, "no access").Kind)
	assert.Equal(t, ai.FailureUnavailable, classifyStatus(502, "upstream down").Kind)
	assert.Equal(t, ai.FailureUnknown, classifyStatus(404, "no such model").Kind)
}
