package repository

import (
	"github.com/careermate/careermate-api/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// NearbyParams filters and pages the geo search. Radius is in kilometers.
type NearbyParams struct {
	Latitude  float64
	Longitude float64
	Radius    float64
	Domain    string
	SortBy    string // "distance" (default) or "createdAt"
	Page      int
	Limit     int
}

// SearchNearby returns postings within the radius, Haversine distance
// computed in SQL, with an exact total count for pagination.
func (r *JobRepository) SearchNearby(params NearbyParams) ([]model.Job, int64, error) {
	distanceExpr := `(6371 * acos(least(1.0,
		cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) +
		sin(radians(?)) * sin(radians(latitude)))))`

	filter := func() *gorm.DB {
		q := r.db.Model(&model.Job{}).
			Where(distanceExpr+" <= ?", params.Latitude, params.Longitude, params.Latitude, params.Radius)
		if params.Domain != "" {
			q = q.Where("LOWER(domain) = LOWER(?)", params.Domain)
		}
		return q
	}

	var total int64
	if err := filter().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "distance ASC"
	if params.SortBy == "createdAt" {
		order = "created_at DESC"
	}

	var jobs []model.Job
	err := filter().
		Select("*, "+distanceExpr+" AS distance", params.Latitude, params.Longitude, params.Latitude).
		Order(order).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&jobs).Error
	return jobs, total, err
}

// SearchByEmbedding ranks postings by vector distance to the query
// embedding.
func (r *JobRepository) SearchByEmbedding(embedding pgvector.Vector, topK int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM jobs
        WHERE embedding IS NOT NULL
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) FindByID(id string) (*model.Job, error) {
	var job model.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}
