// Package transaction exposes the user-level ledger endpoints
// (income/expense/transfer entries).
package transaction

import (
	"strconv"

	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/middleware"
	ledgersvc "github.com/fintrackd/fintrack/pkg/service/ledger"
	"github.com/fintrackd/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the ledger endpoints.
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service, cfg config.Jwt) {
	app.Post("/transactions", middleware.JwtProtected(cfg), AddTransaction(ledgerSvc))
	app.Get("/transactions", middleware.JwtProtected(cfg), GetTransactions(ledgerSvc))
	app.Delete("/transactions/:id", middleware.JwtProtected(cfg), DeleteTransaction(ledgerSvc))
}

// AddTransaction records an income, expense, or transfer-leg transaction.
func AddTransaction(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		create := dto.TransactionCreate{
			OwnerID:   ownerID,
			AccountID: accountID,
			Amount:    input.Amount,
			Type:      input.Type,
			Category:  input.Category,
			Source:    input.Source,
		}
		if input.CounterpartAccountID != "" {
			counterpart, err := uuid.Parse(input.CounterpartAccountID)
			if err != nil {
				return common.ProblemDetailsJSON(c, "Invalid counterpart account ID", err, fiber.StatusBadRequest)
			}
			create.CounterpartAccountID = &counterpart
		}
		tx, err := ledgerSvc.AddTransaction(c.Context(), create)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to record transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction recorded", tx)
	}
}

// GetTransactions returns the owner's ledger, newest first.
func GetTransactions(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		limit, _ := strconv.Atoi(c.Query("limit", "0"))
		txs, err := ledgerSvc.GetTransactions(c.Context(), ownerID, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions", txs)
	}
}

// DeleteTransaction removes a transaction and reverses its balance effect.
func DeleteTransaction(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, fiber.StatusBadRequest)
		}
		if err := ledgerSvc.DeleteTransaction(c.Context(), ownerID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}
