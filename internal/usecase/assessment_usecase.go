package usecase

import (
	"context"
	"fmt"

	"github.com/careermate/careermate-api/internal/ai"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TextGenerator is the outbound capability the assessment pipeline needs:
// one prompt in, raw text out. Implementations classify their failures as
// *ai.ProviderError values and never retry.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AssessmentUsecase runs the content-generation and grading pipeline:
// build the prompt, call the provider, parse the raw text into a typed
// result, and either fall back to the pre-authored catalog or surface the
// failure depending on the task. It holds no per-request state; discussion
// history is owned by the caller.
type AssessmentUsecase struct {
	gen           TextGenerator
	log           *zap.Logger
	forceFallback bool
}

func NewAssessmentUsecase(gen TextGenerator, log *zap.Logger, forceFallback bool) *AssessmentUsecase {
	return &AssessmentUsecase{gen: gen, log: log, forceFallback: forceFallback}
}

// GenerateQuestions produces interview questions for a role and experience
// level. Provider or structural failures degrade to the fallback bank; this
// operation never fails.
func (uc *AssessmentUsecase) GenerateQuestions(ctx context.Context, jobRole, experienceLevel string, count int) []ai.InterviewQuestion {
	if count < 1 {
		count = 5
	}
	if uc.forceFallback {
		return ai.FallbackQuestions(jobRole, count)
	}

	raw, err := uc.gen.GenerateContent(ctx, ai.QuestionsPrompt(jobRole, experienceLevel, count))
	if err != nil {
		uc.log.Warn("question generation failed, using fallback bank",
			zap.String("job_role", jobRole), zap.Error(err))
		return ai.FallbackQuestions(jobRole, count)
	}

	questions, err := ai.ParseQuestions(raw)
	if err != nil {
		uc.log.Warn("question response unparseable, using fallback bank",
			zap.String("job_role", jobRole), zap.Error(err))
		return ai.FallbackQuestions(jobRole, count)
	}
	return questions
}

// AnalyzeResumeMatch compares a resume against a job description. A degraded
// answer would be misleading here, so failures are surfaced, never faked.
func (uc *AssessmentUsecase) AnalyzeResumeMatch(ctx context.Context, resumeText, jobDescription string) (*ai.ResumeMatchAnalysis, error) {
	raw, err := uc.gen.GenerateContent(ctx, ai.ResumeMatchPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, fmt.Errorf("analyze resume match: %w", err)
	}
	analysis, err := ai.ParseResumeMatch(raw)
	if err != nil {
		return nil, fmt.Errorf("analyze resume match: %w", err)
	}
	return analysis, nil
}

// OptimizeResume builds a tailored resume for a target role. When fallback
// mode is forced the deterministic template resume is served without a
// provider call; otherwise failures are surfaced.
func (uc *AssessmentUsecase) OptimizeResume(ctx context.Context, profile ai.UserProfile, targetRole string) (*ai.OptimizedResume, error) {
	if uc.forceFallback {
		uc.log.Warn("serving template resume, AI generation disabled",
			zap.String("target_role", targetRole))
		return ai.TemplateResume(profile, targetRole), nil
	}

	raw, err := uc.gen.GenerateContent(ctx, ai.OptimizeResumePrompt(profile, targetRole))
	if err != nil {
		return nil, fmt.Errorf("optimize resume: %w", err)
	}
	resume, err := ai.ParseOptimizedResume(raw)
	if err != nil {
		return nil, fmt.Errorf("optimize resume: %w", err)
	}
	return resume, nil
}

// EvaluateAnswer grades one answer. MCQ answers (correctAnswer supplied) are
// scored by exact match without touching the provider; open-ended answers go
// through the strict-grading prompt and surface failures, since a made-up
// numeric grade cannot be trusted.
func (uc *AssessmentUsecase) EvaluateAnswer(ctx context.Context, question, answer, jobRole, correctAnswer string) (*ai.InterviewEvaluation, error) {
	if correctAnswer != "" {
		return ai.ScoreMCQ(answer, correctAnswer), nil
	}

	raw, err := uc.gen.GenerateContent(ctx, ai.EvaluationPrompt(question, answer, jobRole))
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}
	evaluation, err := ai.ParseEvaluation(raw)
	if err != nil {
		return nil, fmt.Errorf("evaluate answer: %w", err)
	}
	return evaluation, nil
}

// EvaluateBatch grades a whole interview. Every question/answer pair is
// evaluated concurrently; records land at their question's index so the
// report keeps input order regardless of completion order. The batch either
// fully succeeds or fails as a whole.
func (uc *AssessmentUsecase) EvaluateBatch(ctx context.Context, questions []ai.InterviewQuestion, answers []string, jobRole string) (*ai.AggregateReport, error) {
	if len(questions) != len(answers) {
		return nil, ai.ErrBatchLengthMismatch
	}

	records := make([]ai.EvaluationRecord, len(questions))
	group, groupCtx := errgroup.WithContext(ctx)
	for i := range questions {
		group.Go(func() error {
			question := questions[i]
			answer := answers[i]
			evaluation, err := uc.EvaluateAnswer(groupCtx, question.Question, answer, jobRole, question.CorrectAnswer)
			if err != nil {
				return fmt.Errorf("question %d: %w", question.ID, err)
			}
			records[i] = ai.EvaluationRecord{
				QuestionID:     question.ID,
				Question:       question.Question,
				Answer:         answer,
				ExpectedAnswer: question.ExpectedAnswer,
				CorrectAnswer:  question.CorrectAnswer,
				Evaluation:     evaluation,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate batch: %w", err)
	}

	return ai.Aggregate(records), nil
}

// GenerateCareerAdvice produces counselor guidance. No fallback: made-up
// career advice would be worse than an error.
func (uc *AssessmentUsecase) GenerateCareerAdvice(ctx context.Context, profile ai.CareerProfile) (*ai.CareerAdvice, error) {
	raw, err := uc.gen.GenerateContent(ctx, ai.CareerAdvicePrompt(profile))
	if err != nil {
		return nil, fmt.Errorf("generate career advice: %w", err)
	}
	advice, err := ai.ParseCareerAdvice(raw)
	if err != nil {
		return nil, fmt.Errorf("generate career advice: %w", err)
	}
	return advice, nil
}

// GenerateDiscussionTopic picks a fresh group-discussion topic, degrading to
// the fixed topic pool on failure.
func (uc *AssessmentUsecase) GenerateDiscussionTopic(ctx context.Context) *ai.DiscussionTopic {
	if uc.forceFallback {
		return ai.FallbackTopic()
	}

	raw, err := uc.gen.GenerateContent(ctx, ai.DiscussionTopicPrompt())
	if err != nil {
		uc.log.Warn("discussion topic generation failed, using fallback pool", zap.Error(err))
		return ai.FallbackTopic()
	}
	topic, err := ai.ParseDiscussionTopic(raw)
	if err != nil {
		uc.log.Warn("discussion topic unparseable, using fallback pool", zap.Error(err))
		return ai.FallbackTopic()
	}
	return topic
}

// GenerateDiscussionResponse produces the next assistant turn from the
// caller-owned history, degrading to a fixed generic reply on failure. The
// caller appends new turns to its own session state afterwards.
func (uc *AssessmentUsecase) GenerateDiscussionResponse(ctx context.Context, topic, statement string, history []ai.DiscussionTurn) *ai.DiscussionResponse {
	if uc.forceFallback {
		return ai.FallbackDiscussionReply()
	}

	raw, err := uc.gen.GenerateContent(ctx, ai.DiscussionResponsePrompt(topic, statement, history))
	if err != nil {
		uc.log.Warn("discussion response generation failed, using generic reply", zap.Error(err))
		return ai.FallbackDiscussionReply()
	}
	response, err := ai.ParseDiscussionResponse(raw)
	if err != nil {
		uc.log.Warn("discussion response unparseable, using generic reply", zap.Error(err))
		return ai.FallbackDiscussionReply()
	}
	return response
}
