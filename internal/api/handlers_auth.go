package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/saumyapn/folio/internal/services"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return messageError(c, fiber.StatusBadRequest, services.ErrMissingCredentials.Error())
	}

	result, err := handler.authService.SignUp(input.Email, input.Password, input.Name)
	if err != nil {
		return handler.respondAuthError(c, "signup", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"token":   result.Token,
		"user": authUser{
			ID:    result.Profile.ID,
			Email: result.Profile.Email,
			Name:  result.Profile.Name,
		},
	})
}

func (handler *Handler) Signin(c *fiber.Ctx) error {
	input := signinInput{}
	if err := c.BodyParser(&input); err != nil {
		return messageError(c, fiber.StatusBadRequest, services.ErrMissingCredentials.Error())
	}

	result, err := handler.authService.SignIn(input.Email, input.Password)
	if err != nil {
		return handler.respondAuthError(c, "signin", err)
	}

	return c.JSON(fiber.Map{
		"message": "Signed in successfully",
		"token":   result.Token,
		"user": authUser{
			ID:    result.Profile.ID,
			Email: result.Profile.Email,
			Name:  result.Profile.Name,
		},
	})
}

// respondAuthError maps the service taxonomy onto HTTP statuses. Unexpected
// errors are logged server-side and surface as a generic 500.
func (handler *Handler) respondAuthError(c *fiber.Ctx, operation string, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		return messageError(c, fiber.StatusBadRequest, "Email and password are required")
	case errors.Is(err, services.ErrPasswordTooShort):
		return messageError(c, fiber.StatusBadRequest, "Password must be at least 6 characters")
	case errors.Is(err, services.ErrEmailTaken):
		return messageError(c, fiber.StatusConflict, "User with this email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		return messageError(c, fiber.StatusUnauthorized, "Invalid email or password")
	default:
		handler.log.Error().Err(err).Str("operation", operation).Msg("auth request failed")
		return messageError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
