package usecase

import (
	"context"
	"fmt"

	"github.com/careermate/careermate-api/internal/model"
	"github.com/careermate/careermate-api/internal/repository"
	"github.com/careermate/careermate-api/internal/response"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// Embedder is the outbound capability for vector-based job recommendation.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type JobUsecase struct {
	jobs     *repository.JobRepository
	users    *repository.UserRepository
	embedder Embedder
	log      *zap.Logger
}

func NewJobUsecase(jobs *repository.JobRepository, users *repository.UserRepository, embedder Embedder, log *zap.Logger) *JobUsecase {
	return &JobUsecase{jobs: jobs, users: users, embedder: embedder, log: log}
}

// Create stores a posting for the given company account and indexes it for
// recommendation search. Embedding failures are non-fatal; the posting still
// exists, it just won't surface in recommendations.
func (uc *JobUsecase) Create(ctx context.Context, job *model.Job, companyID uuid.UUID) error {
	company, err := uc.users.FindByID(companyID.String())
	if err != nil {
		return fmt.Errorf("lookup company: %w", err)
	}
	job.CompanyID = company.ID
	job.CompanyName = company.Name
	if err := uc.jobs.Create(job); err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	values, err := uc.embedder.GenerateEmbedding(ctx, job.Title+"\n"+job.Description)
	if err != nil {
		uc.log.Warn("job embedding failed, posting excluded from recommendations",
			zap.String("job_id", job.ID.String()), zap.Error(err))
		return nil
	}
	job.Embedding = pgvector.NewVector(values)
	if err := uc.jobs.Update(job); err != nil {
		uc.log.Warn("failed to store job embedding",
			zap.String("job_id", job.ID.String()), zap.Error(err))
	}
	return nil
}

func (uc *JobUsecase) Get(id string) (*model.Job, error) {
	return uc.jobs.FindByID(id)
}

// Nearby runs the geo search and builds the pagination envelope.
func (uc *JobUsecase) Nearby(params repository.NearbyParams) ([]model.Job, *response.Pagination, error) {
	if params.Radius <= 0 {
		params.Radius = 10
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 20
	}

	jobs, total, err := uc.jobs.SearchNearby(params)
	if err != nil {
		return nil, nil, fmt.Errorf("search nearby jobs: %w", err)
	}
	return jobs, response.NewPagination(params.Page, params.Limit, total, len(jobs)), nil
}

// Recommend embeds the resume text and ranks postings by vector similarity.
func (uc *JobUsecase) Recommend(ctx context.Context, resumeText string, topK int) ([]model.Job, error) {
	if topK < 1 {
		topK = 5
	}
	values, err := uc.embedder.GenerateEmbedding(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("embed resume: %w", err)
	}
	jobs, err := uc.jobs.SearchByEmbedding(pgvector.NewVector(values), topK)
	if err != nil {
		return nil, fmt.Errorf("search jobs by embedding: %w", err)
	}
	return jobs, nil
}
