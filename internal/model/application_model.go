package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationPending   = "pending"
	ApplicationReviewing = "reviewing"
	ApplicationInterview = "interview"
	ApplicationAccepted  = "accepted"
	ApplicationRejected  = "rejected"
)

// Application links a job seeker to a posting. Job title, company name and
// applicant name are denormalized for listing views.
type Application struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID         uuid.UUID  `gorm:"type:uuid;index:idx_applications_job_seeker" json:"jobId"`
	JobTitle      string     `gorm:"type:varchar(255)" json:"jobTitle"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;index" json:"companyId"`
	CompanyName   string     `gorm:"type:varchar(255)" json:"companyName"`
	JobSeekerID   uuid.UUID  `gorm:"type:uuid;index:idx_applications_job_seeker" json:"jobSeekerId"`
	ApplicantName string     `gorm:"type:varchar(255)" json:"applicantName"`
	Status        string     `gorm:"type:varchar(20)" json:"status"`
	CoverLetter   string     `gorm:"type:text" json:"coverLetter"`
	ResumeURL     string     `gorm:"type:varchar(512)" json:"resumeUrl"`
	InterviewDate *time.Time `json:"interviewDate,omitempty"`
	AppliedAt     time.Time  `gorm:"autoCreateTime" json:"appliedAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
