package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/careermate/careermate-api/internal/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubGenerator scripts provider behavior per prompt and counts calls.
type stubGenerator struct {
	calls    atomic.Int64
	generate func(ctx context.Context, prompt string) (string, error)
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.calls.Add(1)
	return s.generate(ctx, prompt)
}

func fixedResponse(raw string) *stubGenerator {
	return &stubGenerator{generate: func(context.Context, string) (string, error) {
		return raw, nil
	}}
}

func failWith(err error) *stubGenerator {
	return &stubGenerator{generate: func(context.Context, string) (string, error) {
		return "", err
	}}
}

func newTestUsecase(gen TextGenerator, forceFallback bool) *AssessmentUsecase {
	return NewAssessmentUsecase(gen, zap.NewNop(), forceFallback)
}

func TestGenerateQuestionsFallsBackOnProviderFailure(t *testing.T) {
	gen := failWith(ai.NewProviderError(ai.FailureUnavailable, errors.New("connection refused")))
	uc := newTestUsecase(gen, false)

	questions := uc.GenerateQuestions(context.Background(), "Quantitative Aptitude", "entry", 3)
	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.Equal(t, ai.CategoryQuantitative, q.Type)
	}
	assert.EqualValues(t, 1, gen.calls.Load())
}

func TestGenerateQuestionsFallsBackOnUnparseableOutput(t *testing.T) {
	uc := newTestUsecase(fixedResponse("Sorry, I cannot help with that."), false)

	questions := uc.GenerateQuestions(context.Background(), "Backend Engineer", "mid", 2)
	require.Len(t, questions, 2)
}

func TestGenerateQuestionsForceFallbackSkipsProvider(t *testing.T) {
	gen := fixedResponse(`[{"id":1,"question":"live"}]`)
	uc := newTestUsecase(gen, true)

	questions := uc.GenerateQuestions(context.Background(), "Verbal Ability", "entry", 2)
	require.Len(t, questions, 2)
	assert.EqualValues(t, 0, gen.calls.Load(), "forced fallback must not call the provider")
}

func TestAnalyzeResumeMatchSurfacesStructuralFailure(t *testing.T) {
	// Truncated JSON: missing closing brace.
	uc := newTestUsecase(fixedResponse(`{"matchScore": 80, "strengths": ["Go"]`), false)

	analysis, err := uc.AnalyzeResumeMatch(context.Background(), "resume", "job description")
	require.Error(t, err)
	assert.Nil(t, analysis)
	assert.True(t, ai.IsStructural(err))
}

func TestAnalyzeResumeMatchSurfacesProviderFailure(t *testing.T) {
	uc := newTestUsecase(failWith(ai.NewProviderError(ai.FailureQuotaExceeded, errors.New("429"))), false)

	_, err := uc.AnalyzeResumeMatch(context.Background(), "resume", "job description")
	require.Error(t, err)
	kind, ok := ai.IsProviderFailure(err)
	require.True(t, ok)
	assert.Equal(t, ai.FailureQuotaExceeded, kind)
}

func TestOptimizeResumeForceFallbackServesTemplate(t *testing.T) {
	gen := fixedResponse("never used")
	uc := newTestUsecase(gen, true)

	resume, err := uc.OptimizeResume(context.Background(), ai.UserProfile{Name: "Ada"}, "Backend Engineer")
	require.NoError(t, err)
	assert.Equal(t, "Ada", resume.ContactInfo.Name)
	assert.EqualValues(t, 0, gen.calls.Load())
}

func TestEvaluateAnswerMCQSkipsProvider(t *testing.T) {
	gen := fixedResponse("never used")
	uc := newTestUsecase(gen, false)

	evaluation, err := uc.EvaluateAnswer(context.Background(), "2+2?", "4", "math", "4")
	require.NoError(t, err)
	assert.Equal(t, 10, evaluation.Score)
	assert.EqualValues(t, 0, gen.calls.Load(), "MCQ grading is deterministic, no provider call")
}

func TestEvaluateAnswerOpenEndedSurfacesFailure(t *testing.T) {
	uc := newTestUsecase(failWith(ai.NewProviderError(ai.FailureUnknown, errors.New("boom"))), false)

	_, err := uc.EvaluateAnswer(context.Background(), "Explain REST.", "it is rest", "backend", "")
	require.Error(t, err)
}

func TestEvaluateBatchLengthMismatchRejectedBeforeAnyCall(t *testing.T) {
	gen := fixedResponse("never used")
	uc := newTestUsecase(gen, false)

	questions := []ai.InterviewQuestion{
		{ID: 1, Question: "a"},
		{ID: 2, Question: "b"},
		{ID: 3, Question: "c"},
	}
	_, err := uc.EvaluateBatch(context.Background(), questions, []string{"x", "y"}, "backend")
	require.ErrorIs(t, err, ai.ErrBatchLengthMismatch)
	assert.EqualValues(t, 0, gen.calls.Load())
}

func TestEvaluateBatchAllCorrectMCQ(t *testing.T) {
	uc := newTestUsecase(fixedResponse("never used"), false)

	questions := []ai.InterviewQuestion{
		{ID: 1, Question: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4"},
	}
	report, err := uc.EvaluateBatch(context.Background(), questions, []string{"4"}, "math")
	require.NoError(t, err)
	assert.Equal(t, 100, report.OverallScore)
	assert.Equal(t, 10.0, report.AverageScore)
	assert.Equal(t, 1, report.CorrectAnswers)
	assert.Equal(t, 1, report.TotalQuestions)
}

func TestEvaluateBatchPreservesOrderUnderConcurrency(t *testing.T) {
	// Completion order is scrambled: later questions finish first.
	gen := &stubGenerator{}
	gen.generate = func(ctx context.Context, prompt string) (string, error) {
		n := gen.calls.Load()
		time.Sleep(time.Duration(10-n) * time.Millisecond)
		return fmt.Sprintf(`{"score": %d, "feedback": "graded"}`, 5+n%5), nil
	}
	uc := newTestUsecase(gen, false)

	const n = 6
	questions := make([]ai.InterviewQuestion, n)
	answers := make([]string, n)
	for i := range questions {
		questions[i] = ai.InterviewQuestion{ID: i + 1, Question: fmt.Sprintf("question %d", i+1)}
		answers[i] = fmt.Sprintf("answer %d", i+1)
	}

	report, err := uc.EvaluateBatch(context.Background(), questions, answers, "backend")
	require.NoError(t, err)
	require.Len(t, report.Evaluations, n)
	for i, record := range report.Evaluations {
		assert.Equal(t, i+1, record.QuestionID)
		assert.Equal(t, fmt.Sprintf("question %d", i+1), record.Question)
		assert.Equal(t, fmt.Sprintf("answer %d", i+1), record.Answer)
	}
}

func TestEvaluateBatchFailsAsAWhole(t *testing.T) {
	gen := &stubGenerator{}
	gen.generate = func(ctx context.Context, prompt string) (string, error) {
		if gen.calls.Load() == 1 {
			return "", ai.NewProviderError(ai.FailureUnavailable, errors.New("reset"))
		}
		return `{"score": 8}`, nil
	}
	uc := newTestUsecase(gen, false)

	questions := []ai.InterviewQuestion{
		{ID: 1, Question: "a"},
		{ID: 2, Question: "b"},
	}
	report, err := uc.EvaluateBatch(context.Background(), questions, []string{"x", "y"}, "backend")
	require.Error(t, err)
	assert.Nil(t, report, "a partial report must never be returned")
}

func TestGenerateDiscussionTopicFallsBack(t *testing.T) {
	uc := newTestUsecase(failWith(ai.NewProviderError(ai.FailureUnavailable, errors.New("down"))), false)

	topic := uc.GenerateDiscussionTopic(context.Background())
	require.NotNil(t, topic)
	assert.NotEmpty(t, topic.Topic)
}

func TestGenerateDiscussionResponseFallsBackOnBadOutput(t *testing.T) {
	uc := newTestUsecase(fixedResponse("not json at all"), false)

	response := uc.GenerateDiscussionResponse(context.Background(), "AI regulation", "I agree.", nil)
	require.NotNil(t, response)
	assert.NotEmpty(t, response.Response)
}

func TestGenerateCareerAdviceSurfacesFailure(t *testing.T) {
	uc := newTestUsecase(failWith(ai.NewProviderError(ai.FailureInvalidCredentials, errors.New("401"))), false)

	_, err := uc.GenerateCareerAdvice(context.Background(), ai.CareerProfile{
		CurrentRole: "Student",
		Experience:  "0 years",
		Skills:      []string{"Go"},
	})
	require.Error(t, err)
	kind, ok := ai.IsProviderFailure(err)
	require.True(t, ok)
	assert.Equal(t, ai.FailureInvalidCredentials, kind)
}
