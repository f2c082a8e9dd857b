package handler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/careermate/careermate-api/internal/ai"
	"github.com/careermate/careermate-api/internal/dto"
	"github.com/careermate/careermate-api/internal/middleware"
	"github.com/careermate/careermate-api/internal/usecase"
	"github.com/careermate/careermate-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	maxResumeUploadBytes = 5 * 1024 * 1024
	resumeUploadDir      = "./uploads/resumes"
)

// resumeSavePath strips any directory components from the client-supplied
// filename so the upload always lands inside resumeUploadDir.
func resumeSavePath(filename string) string {
	return filepath.Join(resumeUploadDir, filepath.Base(filename))
}

type AIHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAIHandler(uc *usecase.AssessmentUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/ai", middleware.RequireAuth(), middleware.RateLimiter(20, 1*time.Minute))
	g.Post("/mock-interview", h.MockInterview)
	g.Post("/job-match", h.JobMatch)
	g.Post("/job-match/upload", h.JobMatchUpload)
	g.Post("/build-resume", h.BuildResume)
	g.Post("/career-advice", h.CareerAdvice)
	g.Post("/interview-feedback", h.InterviewFeedback)
	g.Post("/evaluate-interview", h.EvaluateInterview)
	g.Post("/discussion-topic", h.DiscussionTopic)
	g.Post("/discussion-response", h.DiscussionResponse)
}

func (h *AIHandler) MockInterview(c *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	questions := h.uc.GenerateQuestions(c.Context(), req.JobRole, req.ExperienceLevel, req.Count)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Interview questions generated",
		Data:    fiber.Map{"questions": questions},
	})
}

func (h *AIHandler) JobMatch(c *fiber.Ctx) error {
	var req dto.AnalyzeResumeRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	analysis, err := h.uc.AnalyzeResumeMatch(c.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		return aiErrorResponse(c, "Failed to analyze resume match", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Resume analyzed",
		Data:    analysis,
	})
}

// JobMatchUpload accepts a multipart PDF resume instead of raw text.
func (h *AIHandler) JobMatchUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is required",
		}, err)
	}
	if file.Size > maxResumeUploadBytes {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "resume file is too large (max 5MB)",
		})
	}
	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "only PDF resumes are supported",
		})
	}

	jobDescription := c.FormValue("jobDescription")
	if jobDescription == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "jobDescription is required",
		})
	}

	savePath := resumeSavePath(file.Filename)
	if err := os.MkdirAll(resumeUploadDir, 0o755); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save resume file",
		}, err)
	}
	defer os.Remove(savePath)

	resumeText, err := util.ExtractPDFText(savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: "failed to extract resume text",
		}, err)
	}

	analysis, err := h.uc.AnalyzeResumeMatch(c.Context(), resumeText, jobDescription)
	if err != nil {
		return aiErrorResponse(c, "Failed to analyze resume match", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Resume analyzed",
		Data:    analysis,
	})
}

func (h *AIHandler) BuildResume(c *fiber.Ctx) error {
	var req dto.OptimizeResumeRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	if req.Profile.Name == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "profile.name is required",
		})
	}

	resume, err := h.uc.OptimizeResume(c.Context(), req.Profile, req.TargetRole)
	if err != nil {
		return aiErrorResponse(c, "Failed to build resume", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Resume built",
		Data:    resume,
	})
}

func (h *AIHandler) CareerAdvice(c *fiber.Ctx) error {
	var req dto.CareerAdviceRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	advice, err := h.uc.GenerateCareerAdvice(c.Context(), ai.CareerProfile{
		CurrentRole: req.CurrentRole,
		Experience:  req.Experience,
		Skills:      req.Skills,
		Goals:       req.Goals,
	})
	if err != nil {
		return aiErrorResponse(c, "Failed to generate career advice", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Career advice generated",
		Data:    advice,
	})
}

func (h *AIHandler) InterviewFeedback(c *fiber.Ctx) error {
	var req dto.EvaluateAnswerRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	evaluation, err := h.uc.EvaluateAnswer(c.Context(), req.Question, req.Answer, req.JobRole, req.CorrectAnswer)
	if err != nil {
		return aiErrorResponse(c, "Failed to evaluate answer", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Answer evaluated",
		Data:    evaluation,
	})
}

func (h *AIHandler) EvaluateInterview(c *fiber.Ctx) error {
	var req dto.EvaluateInterviewRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	report, err := h.uc.EvaluateBatch(c.Context(), req.Questions, req.Answers, req.JobRole)
	if err != nil {
		if errors.Is(err, ai.ErrBatchLengthMismatch) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		return aiErrorResponse(c, "Failed to evaluate interview", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Interview evaluated",
		Data:    report,
	})
}

func (h *AIHandler) DiscussionTopic(c *fiber.Ctx) error {
	topic := h.uc.GenerateDiscussionTopic(c.Context())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Discussion topic generated",
		Data:    topic,
	})
}

func (h *AIHandler) DiscussionResponse(c *fiber.Ctx) error {
	var req dto.DiscussionResponseRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	response := h.uc.GenerateDiscussionResponse(c.Context(), req.Topic, req.Statement, req.History)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Discussion response generated",
		Data:    response,
	})
}

// aiErrorResponse maps pipeline failures onto HTTP statuses. Credential and
// quota problems are the server's fault, not the caller's, so they become
// 502/503 rather than 4xx.
func aiErrorResponse(c *fiber.Ctx, message string, err error) error {
	code := fiber.StatusInternalServerError
	if kind, ok := ai.IsProviderFailure(err); ok {
		switch kind {
		case ai.FailureUnavailable:
			code = fiber.StatusServiceUnavailable
		case ai.FailureQuotaExceeded:
			code = fiber.StatusTooManyRequests
		case ai.FailureInvalidCredentials, ai.FailureUnknown:
			code = fiber.StatusBadGateway
		}
	} else if ai.IsStructural(err) {
		code = fiber.StatusBadGateway
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}
