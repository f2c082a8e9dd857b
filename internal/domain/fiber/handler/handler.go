package handler

import (
	"errors"

	"github.com/careermate/careermate-api/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseAndValidate decodes the JSON body into dest and runs its validate
// tags. On failure it writes the error envelope and returns a non-nil error
// the handler should return as-is.
func parseAndValidate(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(dest); err != nil {
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
	return nil
}

// currentUserID reads the authenticated caller's id set by the auth guard.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Invalid session",
		}, err)
	}
	return id, nil
}
