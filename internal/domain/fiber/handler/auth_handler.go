package handler

import (
	"errors"
	"time"

	"github.com/careermate/careermate-api/internal/dto"
	"github.com/careermate/careermate-api/internal/middleware"
	"github.com/careermate/careermate-api/internal/usecase"
	"github.com/careermate/careermate-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/auth", middleware.RateLimiter(10, 1*time.Minute))
	g.Post("/signup", h.Signup)
	g.Post("/login", h.Login)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.Signup(req.Name, req.Identifier, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, usecase.ErrUserExists) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "Account already exists",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to create account",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created",
		Data:    result,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.uc.Login(req.Identifier, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid credentials",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to log in",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Logged in",
		Data:    result,
	})
}
