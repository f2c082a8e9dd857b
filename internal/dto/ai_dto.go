package dto

import "github.com/careermate/careermate-api/internal/ai"

type GenerateQuestionsRequest struct {
	JobRole         string `json:"jobRole" validate:"required"`
	ExperienceLevel string `json:"experienceLevel"`
	Count           int    `json:"count" validate:"omitempty,min=1,max=20"`
}

type AnalyzeResumeRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

type OptimizeResumeRequest struct {
	Profile    ai.UserProfile `json:"profile" validate:"required"`
	TargetRole string         `json:"targetRole"`
}

type CareerAdviceRequest struct {
	CurrentRole string   `json:"currentRole" validate:"required"`
	Experience  string   `json:"experience" validate:"required"`
	Skills      []string `json:"skills" validate:"required,min=1"`
	Goals       string   `json:"goals"`
}

type EvaluateAnswerRequest struct {
	Question      string `json:"question" validate:"required"`
	Answer        string `json:"answer" validate:"required"`
	JobRole       string `json:"jobRole"`
	CorrectAnswer string `json:"correctAnswer"`
}

type EvaluateInterviewRequest struct {
	Questions []ai.InterviewQuestion `json:"questions" validate:"required,min=1"`
	Answers   []string               `json:"answers" validate:"required,min=1"`
	JobRole   string                 `json:"jobRole"`
}

type DiscussionResponseRequest struct {
	Topic     string              `json:"topic" validate:"required"`
	Statement string              `json:"statement" validate:"required"`
	History   []ai.DiscussionTurn `json:"history"`
}
