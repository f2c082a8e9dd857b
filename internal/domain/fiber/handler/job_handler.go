package handler

import (
	"errors"

	"github.com/careermate/careermate-api/internal/dto"
	"github.com/careermate/careermate-api/internal/middleware"
	"github.com/careermate/careermate-api/internal/model"
	"github.com/careermate/careermate-api/internal/repository"
	"github.com/careermate/careermate-api/internal/usecase"
	"github.com/careermate/careermate-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/jobs", middleware.RequireAuth())
	g.Post("/", middleware.RequireRole(model.RoleCompany), h.Create)
	g.Get("/nearby", h.Nearby)
	g.Post("/recommend", middleware.RequireRole(model.RoleJobSeeker), h.Recommend)
	g.Get("/:id", h.Get)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	companyID, err := currentUserID(c)
	if err != nil {
		return err
	}

	job := &model.Job{
		Title:          req.Title,
		Description:    req.Description,
		Domain:         req.Domain,
		Location:       req.Location,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		EmploymentType: req.EmploymentType,
		SalaryRange:    req.SalaryRange,
		Requirements:   req.Requirements,
		Benefits:       req.Benefits,
	}
	if err := h.uc.Create(c.Context(), job, companyID); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to create job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job created",
		Data:    job,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to fetch job",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Job found",
		Data:    job,
	})
}

func (h *JobHandler) Nearby(c *fiber.Ctx) error {
	var query dto.NearbyJobsQuery
	if err := c.QueryParser(&query); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid query parameters",
		}, err)
	}
	if err := util.ValidateStruct(&query); err != nil {
		var formErr *util.FormError
		if errors.As(err, &formErr) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: formErr.Message,
				Details: formErr.Errors,
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Validation failed",
		}, err)
	}

	sortBy := c.Query("sortBy", "distance")
	jobs, pagination, err := h.uc.Nearby(repository.NearbyParams{
		Latitude:  query.Latitude,
		Longitude: query.Longitude,
		Radius:    query.Radius,
		Domain:    query.Domain,
		SortBy:    sortBy,
		Page:      query.Page,
		Limit:     query.Limit,
	})
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to search nearby jobs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Nearby jobs found",
		Data:       jobs,
		Pagination: pagination,
	})
}

func (h *JobHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendJobsRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	jobs, err := h.uc.Recommend(c.Context(), req.ResumeText, req.TopK)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to recommend jobs",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Recommended jobs found",
		Data:    jobs,
	})
}
