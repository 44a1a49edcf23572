// Package currency provides the ISO 4217 currency code tag used by accounts
// and the validation applied when accounts are opened.
package currency

import (
	"regexp"
	"strings"
)

// Code is an ISO 4217 currency code (3 uppercase letters).
type Code string

// Commonly used currency codes.
const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	EGP Code = "EGP"
)

// DefaultCurrency is used when an account is opened without an explicit currency.
const DefaultCurrency = USD

var codeFormat = regexp.MustCompile(`^[A-Z]{3}$`)

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// IsValidCurrencyFormat reports whether the given string is a well-formed
// ISO 4217 code. It validates shape only, not membership in the ISO list.
func IsValidCurrencyFormat(code string) bool {
	return codeFormat.MatchString(code)
}

// Normalize uppercases and trims a user-supplied code so that "usd " and "USD"
// compare equal before validation.
func Normalize(code string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(code)))
}
