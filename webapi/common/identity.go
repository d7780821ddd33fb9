package common

import (
	"github.com/fintrackd/fintrack/pkg/domain"
	"github.com/fintrackd/fintrack/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// OwnerID extracts the authenticated owner id from the verified JWT placed
// in the request context by the auth middleware.
func OwnerID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return auth.GetCurrentUserID(token)
}
