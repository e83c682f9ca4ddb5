package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"6", "R$ 6,00"},
		{"31.9", "R$ 31,90"},
		{"33.495", "R$ 33,50"},
		{"1250.75", "R$ 1.250,75"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-12.5", "-R$ 12,50"},
		{"-0.001", "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrencyBRL(decimal.RequireFromString(tt.in)))
		})
	}
}
