package dto

type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Domain         string   `json:"domain"`
	Location       string   `json:"location" validate:"required"`
	Latitude       float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64  `json:"longitude" validate:"min=-180,max=180"`
	EmploymentType string   `json:"employmentType"`
	SalaryRange    string   `json:"salaryRange"`
	Requirements   []string `json:"requirements"`
	Benefits       []string `json:"benefits"`
}

type NearbyJobsQuery struct {
	Latitude  float64 `query:"lat" validate:"required,min=-90,max=90"`
	Longitude float64 `query:"lng" validate:"required,min=-180,max=180"`
	Radius    float64 `query:"radius" validate:"omitempty,min=0"`
	Domain    string  `query:"domain"`
	Page      int     `query:"page" validate:"omitempty,min=1"`
	Limit     int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

type RecommendJobsRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
	TopK       int    `json:"topK" validate:"omitempty,min=1,max=50"`
}
