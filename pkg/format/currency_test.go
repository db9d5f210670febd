package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Zero", "0", "$0.00"},
		{"Small positive", "15.5", "$15.50"},
		{"Thousands", "1234.56", "$1,234.56"},
		{"Millions", "1234567.891", "$1,234,567.89"},
		{"Negative", "-40", "-$40.00"},
		{"Negative thousands", "-2000", "-$2,000.00"},
		{"Rounds half away from zero", "0.125", "$0.13"},
		{"Negative rounding to zero", "-0.001", "$0.00"},
		{"Negative half cent", "-0.005", "-$0.01"},
		{"Exactly three digits", "999.99", "$999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(decimal.RequireFromString(tt.input))
			if got != tt.expected {
				t.Errorf("Currency(%s) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	tests := map[string]string{
		"-1234.5": "-1234.50",
		"44.5":    "44.50",
		"0.125":   "0.13",
		"-0.125":  "-0.13",
		"-0.001":  "0.00",
	}
	for input, expected := range tests {
		if got := Plain(decimal.RequireFromString(input)); got != expected {
			t.Errorf("Plain(%s) = %q, expected %q", input, got, expected)
		}
	}
}
