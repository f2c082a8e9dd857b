package handler

import (
	"errors"

	"github.com/careermate/careermate-api/internal/dto"
	"github.com/careermate/careermate-api/internal/middleware"
	"github.com/careermate/careermate-api/internal/model"
	"github.com/careermate/careermate-api/internal/usecase"
	"github.com/careermate/careermate-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/applications", middleware.RequireAuth())
	g.Post("/", middleware.RequireRole(model.RoleJobSeeker), h.Apply)
	g.Get("/mine", middleware.RequireRole(model.RoleJobSeeker), h.ListMine)
	g.Get("/job/:jobId", middleware.RequireRole(model.RoleCompany), h.ListForJob)
	g.Get("/:id", h.Get)
	g.Patch("/:id/status", middleware.RequireRole(model.RoleCompany), h.UpdateStatus)
	g.Delete("/:id", middleware.RequireRole(model.RoleJobSeeker), h.Withdraw)
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	jobSeekerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	application, err := h.uc.Apply(req.JobID, jobSeekerID, req.CoverLetter, req.ResumeURL)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAlreadyApplied):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: err.Error(),
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "Job not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to submit application",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted",
		Data:    application,
	})
}

func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	jobSeekerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	applications, err := h.uc.ListMine(jobSeekerID)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to list applications",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Applications found",
		Data:    applications,
	})
}

func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	companyID, err := currentUserID(c)
	if err != nil {
		return err
	}
	applications, err := h.uc.ListForJob(c.Params("jobId"), companyID)
	if err != nil {
		if errors.Is(err, usecase.ErrApplicationForbidden) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: err.Error(),
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to list applicants",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Applicants found",
		Data:    applications,
	})
}

func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	application, err := h.uc.Get(c.Params("id"), userID)
	if err != nil {
		return applicationErrorResponse(c, "Failed to fetch application", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Application found",
		Data:    application,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateApplicationStatusRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}
	companyID, err := currentUserID(c)
	if err != nil {
		return err
	}

	application, err := h.uc.UpdateStatus(c.Params("id"), companyID, req.Status, req.InterviewDate)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		return applicationErrorResponse(c, "Failed to update application", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Application updated",
		Data:    application,
	})
}

func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	jobSeekerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Withdraw(c.Params("id"), jobSeekerID); err != nil {
		if errors.Is(err, usecase.ErrNotWithdrawable) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: err.Error(),
			})
		}
		return applicationErrorResponse(c, "Failed to withdraw application", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Application withdrawn",
	})
}

func applicationErrorResponse(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrApplicationForbidden):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "Application not found",
		})
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: message,
	}, err)
}
