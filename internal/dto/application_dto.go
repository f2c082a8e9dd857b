package dto

import "time"

type ApplyRequest struct {
	JobID       string `json:"jobId" validate:"required,uuid"`
	CoverLetter string `json:"coverLetter"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status        string     `json:"status" validate:"required,oneof=pending reviewing interview accepted rejected"`
	InterviewDate *time.Time `json:"interviewDate"`
}
