// Package common holds the response envelope, problem-details rendering, and
// request binding shared by the HTTP handlers.
package common

import (
	"errors"

	"github.com/fintrackd/fintrack/pkg/domain"
	"github.com/fintrackd/fintrack/pkg/domain/account"
	"github.com/fintrackd/fintrack/pkg/domain/goal"
	"github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/domain/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response is the standard success envelope.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The status is
// derived from the error unless an explicit override is given.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, status ...int) error {
	code := fiber.StatusInternalServerError
	if err != nil {
		code = ErrorToStatusCode(err)
	}
	if len(status) > 0 {
		code = status[0]
	}
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   code,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(code).JSON(pd)
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, account.ErrTransactionNotFound),
		errors.Is(err, goal.ErrGoalNotFound),
		errors.Is(err, movement.ErrMovementNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrCurrencyMismatch),
		errors.Is(err, goal.ErrNoLinkedAccount):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, account.ErrAmountMustBePositive),
		errors.Is(err, goal.ErrAmountMustBePositive),
		errors.Is(err, account.ErrSameAccountTransfer),
		errors.Is(err, movement.ErrInvalidCursor),
		errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, account.ErrNotOwner),
		errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body into T and validates it. On failure
// the error response is already written and the returned struct is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		return nil, err
	}
	if err := validator.New().Struct(input); err != nil {
		_ = ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
		return nil, err
	}
	return &input, nil
}
