// Package transfer exposes the account-to-account transfer endpoint.
package transfer

import (
	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/fintrackd/fintrack/pkg/middleware"
	transfersvc "github.com/fintrackd/fintrack/pkg/service/transfer"
	"github.com/fintrackd/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TransferRequest is the request body for moving funds between two accounts.
type TransferRequest struct {
	DestinationAccountID string  `json:"destination_account_id" validate:"required,uuid4"`
	Amount               float64 `json:"amount" validate:"required,gt=0"`
	Description          string  `json:"description" validate:"omitempty,max=256"`
}

// Routes registers the transfer endpoint.
func Routes(app *fiber.App, transferSvc *transfersvc.Service, cfg config.Jwt) {
	app.Post("/account/:id/transfer", middleware.JwtProtected(cfg), Transfer(transferSvc))
}

// Transfer moves funds from the account in the path to the destination in
// the body.
func Transfer(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		sourceID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		destID, err := uuid.Parse(input.DestinationAccountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid destination account ID", err, fiber.StatusBadRequest)
		}
		result, err := transferSvc.Transfer(c.Context(), ownerID, sourceID, destID, input.Amount, input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", result)
	}
}
