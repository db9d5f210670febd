package mathutil

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Round up at midpoint", "1.235", "1.24"},
		{"Round down below midpoint", "1.234", "1.23"},
		{"No rounding needed", "1.23", "1.23"},
		{"Large number", "12345.678", "12345.68"},
		{"Negative number round away from zero", "-1.235", "-1.24"},
		{"Negative number round down", "-1.234", "-1.23"},
		{"Zero", "0", "0"},
		{"Very small positive", "0.001", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(d(tt.input))
			if !result.Equal(d(tt.expected)) {
				t.Errorf("Round(%s) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		count    int
		expected string
	}{
		{"Zero count", "100", 0, "0"},
		{"Even split", "100", 4, "25"},
		{"Repeating decimal", "100", 3, "33.33"},
		{"Negative", "-10", 3, "-3.33"},
		{"Half rounds away from zero", "0.05", 2, "0.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Average(d(tt.total), tt.count)
			if !got.Equal(d(tt.expected)) {
				t.Errorf("Average(%s, %d) = %s, expected %s", tt.total, tt.count, got, tt.expected)
			}
		})
	}
}
