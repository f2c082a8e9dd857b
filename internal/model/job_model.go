package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Job is a posting created by a company account. Latitude/longitude drive
// the nearby search; Embedding drives resume-based recommendations.
type Job struct {
	ID             uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title          string          `gorm:"type:varchar(255)" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	Domain         string          `gorm:"type:varchar(100);index" json:"domain"`
	Location       string          `gorm:"type:varchar(255)" json:"location"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	EmploymentType string          `gorm:"type:varchar(50)" json:"employmentType"`
	SalaryRange    string          `gorm:"type:varchar(100)" json:"salaryRange"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;index" json:"companyId"`
	CompanyName    string          `gorm:"type:varchar(255)" json:"companyName"`
	Requirements   []string        `gorm:"serializer:json;type:jsonb" json:"requirements"`
	Benefits       []string        `gorm:"serializer:json;type:jsonb" json:"benefits"`
	Embedding      pgvector.Vector `gorm:"type:vector(3072)" json:"-"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`

	// Distance is populated by the nearby search query only.
	Distance float64 `gorm:"->;-:migration" json:"distance,omitempty"`
}

func (j *Job) TableName() string {
	return "jobs"
}
