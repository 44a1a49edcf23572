package webapi

import (
	"github.com/finbooks/ledger/pkg/currency"
	"github.com/finbooks/ledger/pkg/domain"
	accountsvc "github.com/finbooks/ledger/pkg/service/account"
	ledgersvc "github.com/finbooks/ledger/pkg/service/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// OpenAccountRequest is the body for POST /accounts.
type OpenAccountRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Type     string `json:"type" validate:"required"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

// AccountResponse is the wire shape of an account.
type AccountResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
}

// AccountRoutes registers the account endpoints.
//
//   - POST /accounts                  : open a new account
//   - GET  /accounts/:id/balance      : derived balance
//   - GET  /accounts/:id/ledger       : entry history, oldest first
//   - GET  /accounts/:id/transactions : transactions touching the account
func AccountRoutes(app *fiber.App, accounts *accountsvc.Service, engine *ledgersvc.Service) {
	app.Post("/accounts", OpenAccount(accounts))
	app.Get("/accounts/:id/balance", GetBalance(engine))
	app.Get("/accounts/:id/ledger", GetLedger(engine))
	app.Get("/accounts/:id/transactions", GetTransactions(engine))
}

// OpenAccount returns the handler creating a new account.
func OpenAccount(accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[OpenAccountRequest](c)
		if input == nil {
			return err
		}
		userID, err := uuid.Parse(input.UserID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid user ID", err.Error())
		}
		acct, err := accounts.Open(
			c.Context(),
			userID,
			domain.AccountType(input.Type),
			currency.Normalize(input.Currency),
		)
		if err != nil {
			return ErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toAccountResponse(acct))
	}
}

// GetBalance returns the handler serving the account's derived balance.
func GetBalance(engine *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		balance, err := engine.Balance(c.Context(), accountID)
		if err != nil {
			return ErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Balance", fiber.Map{
			"account_id": accountID,
			"balance":    balance,
		})
	}
}

// GetLedger returns the handler listing the account's entries.
func GetLedger(engine *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		entries, err := engine.Entries(c.Context(), accountID)
		if err != nil {
			return ErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Ledger", fiber.Map{
			"account_id": accountID,
			"ledger":     toEntryResponses(entries),
		})
	}
}

// GetTransactions returns the handler listing transactions for the account.
func GetTransactions(engine *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		txs, err := engine.Transactions(c.Context(), accountID)
		if err != nil {
			return ErrorJSON(c, err)
		}
		out := make([]TransactionResponse, 0, len(txs))
		for _, tx := range txs {
			out = append(out, toTransactionResponse(tx))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions", out)
	}
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Type:      string(a.Type),
		Currency:  a.Currency.String(),
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
