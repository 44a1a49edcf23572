package domain

import "errors"

// Engine error taxonomy. The transport layer maps these to protocol status
// codes; the engine itself never deals in HTTP semantics.
var (
	// ErrInvalidAmount is returned when a requested amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrAccountNotFound is returned when an account reference is unknown.
	ErrAccountNotFound = errors.New("account not found")
	// ErrSameAccount is returned for a transfer whose source and destination
	// are the same account.
	ErrSameAccount = errors.New("source and destination accounts must differ")
	// ErrInsufficientFunds is returned when a withdrawal or the debit leg of a
	// transfer would drive the derived balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrCurrencyMismatch is returned for a transfer between accounts with
	// different currency tags. Conversion is out of scope.
	ErrCurrencyMismatch = errors.New("accounts have different currencies")
	// ErrInvalidCurrencyCode is returned when an account is opened with a
	// malformed ISO 4217 code.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	// ErrStoreFailure wraps store-level failures, including serialization
	// conflicts that survived the retry budget.
	ErrStoreFailure = errors.New("ledger store failure")
)
