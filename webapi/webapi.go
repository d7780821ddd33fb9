// Package webapi assembles the HTTP surface. Handlers live in sub-packages
// per domain: account, transaction, transfer, goal, movement, auth.
package webapi

import (
	"errors"
	"strings"

	"github.com/fintrackd/fintrack/pkg/app"
	accountweb "github.com/fintrackd/fintrack/webapi/account"
	authweb "github.com/fintrackd/fintrack/webapi/auth"
	"github.com/fintrackd/fintrack/webapi/common"
	goalweb "github.com/fintrackd/fintrack/webapi/goal"
	movementweb "github.com/fintrackd/fintrack/webapi/movement"
	transactionweb "github.com/fintrackd/fintrack/webapi/transaction"
	transferweb "github.com/fintrackd/fintrack/webapi/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp initializes Fiber with the shared middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ProblemDetailsJSON(c, fe.Message, err, fe.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Honor proxy headers before falling back to the direct IP.
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if i := strings.Index(forwardedFor, ","); i != -1 {
					return strings.TrimSpace(forwardedFor[:i])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Fintrack API is running")
	})

	jwtCfg := a.Config.Jwt
	authweb.Routes(fiberApp, a.AuthService)
	accountweb.Routes(fiberApp, a.AccountService, jwtCfg)
	transactionweb.Routes(fiberApp, a.LedgerService, jwtCfg)
	transferweb.Routes(fiberApp, a.TransferService, jwtCfg)
	goalweb.Routes(fiberApp, a.GoalService, jwtCfg)
	movementweb.Routes(fiberApp, a.AuditService, jwtCfg)
	return fiberApp
}
