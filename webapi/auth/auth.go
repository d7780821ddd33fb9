// Package auth exposes the registration and login endpoints.
package auth

import (
	authsvc "github.com/fintrackd/fintrack/pkg/service/auth"
	"github.com/fintrackd/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the auth endpoints. These are the only unprotected routes.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/auth/register", Register(authSvc))
	app.Post("/auth/login", Login(authSvc))
}

// Register creates a new user.
func Register(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Register(c.Context(), dtoFromRegister(input))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to register", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", u)
	}
}

// Login authenticates the user and returns a signed JWT.
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid email or password", err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{"token": token})
	}
}
