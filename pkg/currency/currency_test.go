package currency_test

import (
	"testing"

	"github.com/finbooks/ledger/pkg/currency"
	"github.com/stretchr/testify/assert"
)

func TestIsValidCurrencyFormat(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"USD", true},
		{"EUR", true},
		{"EGP", true},
		{"usd", false},
		{"US", false},
		{"USDT", false},
		{"", false},
		{"U$D", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, currency.IsValidCurrencyFormat(tt.code))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, currency.USD, currency.Normalize(" usd "))
	assert.Equal(t, currency.EUR, currency.Normalize("eur"))
	assert.True(t, currency.IsValidCurrencyFormat(currency.Normalize("gbp").String()))
}
