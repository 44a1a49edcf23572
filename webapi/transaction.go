package webapi

import (
	"github.com/finbooks/ledger/pkg/domain"
	ledgersvc "github.com/finbooks/ledger/pkg/service/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositRequest is the body for POST /transactions/deposit.
type DepositRequest struct {
	AccountID string          `json:"account_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount"`
}

// WithdrawRequest is the body for POST /transactions/withdraw.
type WithdrawRequest struct {
	AccountID string          `json:"account_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount"`
}

// TransferRequest is the body for POST /transactions/transfer.
type TransferRequest struct {
	SourceAccount      string          `json:"source_account" validate:"required,uuid"`
	DestinationAccount string          `json:"destination_account" validate:"required,uuid"`
	Amount             decimal.Decimal `json:"amount"`
}

// TransactionResponse is the wire shape of a committed transaction.
type TransactionResponse struct {
	ID                   string          `json:"id"`
	Kind                 string          `json:"kind"`
	Status               string          `json:"status"`
	SourceAccountID      *string         `json:"source_account_id,omitempty"`
	DestinationAccountID *string         `json:"destination_account_id,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	CreatedAt            string          `json:"created_at"`
}

// EntryResponse is the wire shape of a ledger entry.
type EntryResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	EntryType     string          `json:"entry_type"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     string          `json:"created_at"`
}

// TransactionRoutes registers the ledger operation endpoints.
//
//   - POST /transactions/deposit  : credit an account
//   - POST /transactions/withdraw : debit an account after the funds check
//   - POST /transactions/transfer : move funds between two accounts
func TransactionRoutes(app *fiber.App, engine *ledgersvc.Service) {
	app.Post("/transactions/deposit", Deposit(engine))
	app.Post("/transactions/withdraw", Withdraw(engine))
	app.Post("/transactions/transfer", Transfer(engine))
}

// Deposit returns the handler crediting an account.
func Deposit(engine *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[DepositRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		tx, err := engine.Deposit(c.Context(), accountID, input.Amount)
		if err != nil {
			return ErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Deposit successful", toTransactionResponse(tx))
	}
}

// Withdraw returns the handler debiting an account.
func Withdraw(engine *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", err.Error())
		}
		tx, err := engine.Withdraw(c.Context(), accountID, input.Amount)
		if err != nil {
			return ErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Withdrawal successful", toTransactionResponse(tx))
	}
}

// Transfer returns the handler moving funds between two accounts.
func Transfer(engine *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		sourceID, err := uuid.Parse(input.SourceAccount)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid source account ID", err.Error())
		}
		destinationID, err := uuid.Parse(input.DestinationAccount)
		if err != nil {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid destination account ID", err.Error())
		}
		tx, err := engine.Transfer(c.Context(), sourceID, destinationID, input.Amount)
		if err != nil {
			return ErrorJSON(c, err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Transfer successful", toTransactionResponse(tx))
	}
}

func toTransactionResponse(tx *domain.Transaction) TransactionResponse {
	out := TransactionResponse{
		ID:        tx.ID.String(),
		Kind:      string(tx.Kind),
		Status:    string(tx.Status),
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if tx.SourceAccountID != nil {
		s := tx.SourceAccountID.String()
		out.SourceAccountID = &s
	}
	if tx.DestinationAccountID != nil {
		s := tx.DestinationAccountID.String()
		out.DestinationAccountID = &s
	}
	return out
}

func toEntryResponses(entries []domain.LedgerEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, EntryResponse{
			ID:            e.ID.String(),
			TransactionID: e.TransactionID.String(),
			EntryType:     string(e.EntryType),
			Amount:        e.Amount,
			CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}
