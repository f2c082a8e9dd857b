package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/careermate/careermate-api/internal/model"
	"github.com/careermate/careermate-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrAlreadyApplied       = errors.New("you have already applied for this job")
	ErrApplicationForbidden = errors.New("you do not have access to this application")
	ErrInvalidStatus        = errors.New("invalid application status")
	ErrNotWithdrawable      = errors.New("application can no longer be withdrawn")
)

var validStatuses = map[string]bool{
	model.ApplicationPending:   true,
	model.ApplicationReviewing: true,
	model.ApplicationInterview: true,
	model.ApplicationAccepted:  true,
	model.ApplicationRejected:  true,
}

type ApplicationUsecase struct {
	applications *repository.ApplicationRepository
	jobs         *repository.JobRepository
	users        *repository.UserRepository
	log          *zap.Logger
}

func NewApplicationUsecase(
	applications *repository.ApplicationRepository,
	jobs *repository.JobRepository,
	users *repository.UserRepository,
	log *zap.Logger,
) *ApplicationUsecase {
	return &ApplicationUsecase{applications: applications, jobs: jobs, users: users, log: log}
}

// Apply submits an application for a posting. Duplicate applications by the
// same job seeker are rejected.
func (uc *ApplicationUsecase) Apply(jobID string, jobSeekerID uuid.UUID, coverLetter, resumeURL string) (*model.Application, error) {
	job, err := uc.jobs.FindByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("lookup job: %w", err)
	}

	exists, err := uc.applications.Exists(jobID, jobSeekerID.String())
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	applicant, err := uc.users.FindByID(jobSeekerID.String())
	if err != nil {
		return nil, fmt.Errorf("lookup applicant: %w", err)
	}

	application := &model.Application{
		JobID:         job.ID,
		JobTitle:      job.Title,
		CompanyID:     job.CompanyID,
		CompanyName:   job.CompanyName,
		JobSeekerID:   jobSeekerID,
		ApplicantName: applicant.Name,
		Status:        model.ApplicationPending,
		CoverLetter:   coverLetter,
		ResumeURL:     resumeURL,
	}
	if err := uc.applications.Create(application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	uc.log.Info("application submitted",
		zap.String("application_id", application.ID.String()),
		zap.String("job_id", jobID))
	return application, nil
}

func (uc *ApplicationUsecase) ListMine(jobSeekerID uuid.UUID) ([]model.Application, error) {
	return uc.applications.FindByJobSeeker(jobSeekerID.String())
}

// ListForJob returns a posting's applications to its owning company.
func (uc *ApplicationUsecase) ListForJob(jobID string, companyID uuid.UUID) ([]model.Application, error) {
	job, err := uc.jobs.FindByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("lookup job: %w", err)
	}
	if job.CompanyID != companyID {
		return nil, ErrApplicationForbidden
	}
	return uc.applications.FindByJob(jobID)
}

// Get returns one application to either its applicant or the hiring company.
func (uc *ApplicationUsecase) Get(id string, userID uuid.UUID) (*model.Application, error) {
	application, err := uc.applications.FindByID(id)
	if err != nil {
		return nil, err
	}
	if application.JobSeekerID != userID && application.CompanyID != userID {
		return nil, ErrApplicationForbidden
	}
	return application, nil
}

// UpdateStatus lets the hiring company move an application through the
// pipeline, optionally scheduling an interview date.
func (uc *ApplicationUsecase) UpdateStatus(id string, companyID uuid.UUID, status string, interviewDate *time.Time) (*model.Application, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}
	application, err := uc.applications.FindByID(id)
	if err != nil {
		return nil, err
	}
	if application.CompanyID != companyID {
		return nil, ErrApplicationForbidden
	}

	application.Status = status
	if interviewDate != nil {
		application.InterviewDate = interviewDate
	}
	if err := uc.applications.Update(application); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return application, nil
}

// Withdraw removes a pending or reviewing application at the applicant's
// request.
func (uc *ApplicationUsecase) Withdraw(id string, jobSeekerID uuid.UUID) error {
	application, err := uc.applications.FindByID(id)
	if err != nil {
		return err
	}
	if application.JobSeekerID != jobSeekerID {
		return ErrApplicationForbidden
	}
	if application.Status != model.ApplicationPending && application.Status != model.ApplicationReviewing {
		return ErrNotWithdrawable
	}
	return uc.applications.Delete(id)
}
