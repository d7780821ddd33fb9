// Package account exposes the account endpoints, including the
// account-scoped debit/credit sub-ledger.
package account

import (
	"strconv"

	"github.com/fintrackd/fintrack/pkg/config"
	"github.com/fintrackd/fintrack/pkg/dto"
	"github.com/fintrackd/fintrack/pkg/middleware"
	accountsvc "github.com/fintrackd/fintrack/pkg/service/account"
	"github.com/fintrackd/fintrack/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the account endpoints.
//
//   - POST   /account                   : create an account
//   - GET    /account                   : list the owner's accounts
//   - GET    /account/:id               : fetch one account
//   - PUT    /account/:id               : update non-monetary fields
//   - DELETE /account/:id               : delete the account
//   - POST   /account/:id/transactions  : record a debit/credit entry
//   - GET    /account/:id/transactions  : list the account sub-ledger
func Routes(app *fiber.App, accountSvc *accountsvc.Service, cfg config.Jwt) {
	app.Post("/account", middleware.JwtProtected(cfg), CreateAccount(accountSvc))
	app.Get("/account", middleware.JwtProtected(cfg), ListAccounts(accountSvc))
	app.Get("/account/:id", middleware.JwtProtected(cfg), GetAccount(accountSvc))
	app.Put("/account/:id", middleware.JwtProtected(cfg), UpdateAccount(accountSvc))
	app.Delete("/account/:id", middleware.JwtProtected(cfg), DeleteAccount(accountSvc))
	app.Post("/account/:id/transactions", middleware.JwtProtected(cfg), AddEntry(accountSvc))
	app.Get("/account/:id/transactions", middleware.JwtProtected(cfg), ListEntries(accountSvc))
}

// CreateAccount creates an account for the authenticated owner.
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.CreateAccount(c.Context(), dto.AccountCreate{
			OwnerID:     ownerID,
			Name:        input.Name,
			Type:        input.Type,
			Balance:     input.Balance,
			Currency:    input.Currency,
			Description: input.Description,
			IsDefault:   input.IsDefault,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", a)
	}
}

// ListAccounts returns all of the owner's accounts.
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accounts, err := accountSvc.ListAccounts(c.Context(), ownerID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", accounts)
	}
}

// GetAccount returns one account.
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		a, err := accountSvc.GetAccount(c.Context(), ownerID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account", a)
	}
}

// UpdateAccount merges a partial update into the account.
func UpdateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.UpdateAccount(c.Context(), ownerID, id, dto.AccountUpdate{
			Name:        input.Name,
			Type:        input.Type,
			Description: input.Description,
			IsDefault:   input.IsDefault,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", a)
	}
}

// DeleteAccount removes the account. Linked goals are detached, history stays.
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		if err := accountSvc.DeleteAccount(c.Context(), ownerID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}

// AddEntry records a debit or credit entry against the account.
func AddEntry(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[EntryRequest](c)
		if input == nil {
			return err
		}
		tx, err := accountSvc.AddAccountTransaction(c.Context(), dto.AccountTransactionCreate{
			OwnerID:   ownerID,
			AccountID: accountID,
			Amount:    input.Amount,
			Type:      input.Type,
			Category:  input.Category,
			Source:    input.Source,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to record entry", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Entry recorded", tx)
	}
}

// ListEntries returns the account sub-ledger, newest first.
func ListEntries(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := common.OwnerID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
		}
		limit, _ := strconv.Atoi(c.Query("limit", "0"))
		txs, err := accountSvc.ListAccountTransactions(c.Context(), ownerID, accountID, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list entries", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Entries", txs)
	}
}
