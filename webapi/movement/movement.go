// Package movement exposes the movement audit trail: paged reads plus the
// direct append endpoint. There is no update or delete over HTTP.
package movement

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/fintrackd/fintrack/pkg/domain"
	movementdomain "github.com/fintrackd/fintrack/pkg/domain/movement"
	"github.com/fintrackd/fintrack/pkg/mapper"
	"github.com/fintrackd/fintrack/pkg/middleware"
	auditsvc "github.com/fintrackd/fintrack/pkg/service/audit"
	"github.com/fintrackd/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the movement endpoints.
func Routes(app *fiber.App, auditSvc *auditsvc.Service, cfg config.Jwt) {
	app.Get("/movements", middleware.JwtProtected(cfg), ListMovements(auditSvc))
	app.Get("/movements/type/:type", middleware.JwtProtected(cfg), ListByType(auditSvc))
	app.Get("/movements/range", middleware.JwtProtected(cfg), ListByDateRange(auditSvc))
	app.Post("/movements", middleware.JwtProtected(cfg), AppendMovement(auditSvc))
}

// AppendMovement writes one audit entry for the caller. Unlike the movements
// the ledger services record on their own, a failure here is reported.
func AppendMovement(auditSvc *auditsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[AppendRequest](c)
		if input == nil {
			return err
		}
		m, err := movementdomain.New(ownerID, movementdomain.Type(input.Type), input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid movement",
				fmt.Errorf("%w: %v", domain.ErrValidation, err))
		}
		for k, v := range input.Metadata {
			m.WithMeta(k, v)
		}
		if err := auditSvc.Append(c.Context(), m); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to append movement", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Movement recorded", mapper.MovementToRead(m))
	}
}

// ListMovements returns one page of the trail, newest first. Pass the
// returned next_cursor back as ?cursor= to continue.
func ListMovements(auditSvc *auditsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		limit, _ := strconv.Atoi(c.Query("limit", "0"))
		page, err := auditSvc.List(c.Context(), ownerID, limit, c.Query("cursor"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list movements", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Movements", page)
	}
}

// ListByType returns the newest movements of one type.
func ListByType(auditSvc *auditsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		limit, _ := strconv.Atoi(c.Query("limit", "0"))
		movements, err := auditSvc.ListByType(c.Context(), ownerID, c.Params("type"), limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list movements", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Movements", movements)
	}
}

// ListByDateRange returns the newest movements between ?start= and ?end=
// (RFC 3339).
func ListByDateRange(auditSvc *auditsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		start, err := time.Parse(time.RFC3339, c.Query("start"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid start time", err, fiber.StatusBadRequest)
		}
		end, err := time.Parse(time.RFC3339, c.Query("end"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid end time", err, fiber.StatusBadRequest)
		}
		limit, _ := strconv.Atoi(c.Query("limit", "0"))
		movements, err := auditSvc.ListByDateRange(c.Context(), ownerID, start, end, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list movements", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Movements", movements)
	}
}
