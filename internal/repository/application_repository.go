package repository

import (
	"errors"

	"github.com/careermate/careermate-api/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) Create(application *model.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepository) Update(application *model.Application) error {
	return r.db.Save(application).Error
}

func (r *ApplicationRepository) Delete(id string) error {
	return r.db.Delete(&model.Application{}, "id = ?", id).Error
}

func (r *ApplicationRepository) FindByID(id string) (*model.Application, error) {
	var application model.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepository) FindByJobSeeker(jobSeekerID string) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.Where("job_seeker_id = ?", jobSeekerID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepository) FindByJob(jobID string) ([]model.Application, error) {
	var applications []model.Application
	err := r.db.Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// Exists reports whether the job seeker already applied to the job.
func (r *ApplicationRepository) Exists(jobID, jobSeekerID string) (bool, error) {
	var application model.Application
	err := r.db.Where("job_id = ? AND job_seeker_id = ?", jobID, jobSeekerID).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
