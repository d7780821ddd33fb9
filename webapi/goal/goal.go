// Package goal exposes the savings goal endpoints.
package goal

import (
	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/middleware"
	goalsvc "github.com/fintrackd/fintrack/pkg/service/goal"
	"github.com/fintrackd/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the goal endpoints.
func Routes(app *fiber.App, goalSvc *goalsvc.Service, cfg config.Jwt) {
	app.Post("/goal", middleware.JwtProtected(cfg), CreateGoal(goalSvc))
	app.Get("/goal", middleware.JwtProtected(cfg), ListGoals(goalSvc))
	app.Get("/goal/:id", middleware.JwtProtected(cfg), GetGoal(goalSvc))
	app.Put("/goal/:id", middleware.JwtProtected(cfg), UpdateGoal(goalSvc))
	app.Delete("/goal/:id", middleware.JwtProtected(cfg), DeleteGoal(goalSvc))
	app.Post("/goal/:id/fund", middleware.JwtProtected(cfg), FundGoal(goalSvc))
	app.Post("/goal/:id/reduce", middleware.JwtProtected(cfg), ReduceProgress(goalSvc))
}

// CreateGoal creates a savings goal, optionally linked to a funding account.
func CreateGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateGoalRequest](c)
		if input == nil {
			return err
		}
		create := dto.GoalCreate{
			OwnerID:  ownerID,
			Name:     input.Name,
			Target:   input.Target,
			Currency: input.Currency,
			Deadline: input.Deadline,
		}
		if input.AccountID != "" {
			accountID, err := uuid.Parse(input.AccountID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
			}
			create.AccountID = &accountID
		}
		g, err := goalSvc.CreateGoal(c.Context(), create)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Goal created", g)
	}
}

// ListGoals returns all of the owner's goals.
func ListGoals(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		goals, err := goalSvc.ListGoals(c.Context(), ownerID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list goals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goals", goals)
	}
}

// GetGoal returns one goal.
func GetGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal ID", err, fiber.StatusBadRequest)
		}
		g, err := goalSvc.GetGoal(c.Context(), ownerID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal", g)
	}
}

// UpdateGoal merges a partial update into the goal.
func UpdateGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateGoalRequest](c)
		if input == nil {
			return err
		}
		update := dto.GoalUpdate{
			Name:     input.Name,
			Target:   input.Target,
			Deadline: input.Deadline,
			Status:   input.Status,
		}
		if input.AccountID != nil {
			accountID, err := uuid.Parse(*input.AccountID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
			}
			update.AccountID = &accountID
		}
		g, err := goalSvc.UpdateGoal(c.Context(), ownerID, id, update)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal updated", g)
	}
}

// DeleteGoal removes the goal. Contributed funds stay in the account.
func DeleteGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal ID", err, fiber.StatusBadRequest)
		}
		if err := goalSvc.DeleteGoal(c.Context(), ownerID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal deleted", nil)
	}
}

// FundGoal moves funds from the goal's linked account into its progress.
func FundGoal(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		result, err := goalSvc.AddFunds(c.Context(), ownerID, id, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fund goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal funded", result)
	}
}

// ReduceProgress lowers the goal's current amount without moving account money.
func ReduceProgress(goalSvc *goalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		g, err := goalSvc.ReduceProgress(c.Context(), ownerID, id, input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to reduce goal progress", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal progress reduced", g)
	}
}
