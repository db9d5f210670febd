// Package format renders monetary values for display.
package format

import (
	"strings"

	"github.com/iwvelando/finance-report/pkg/constants"
	"github.com/iwvelando/finance-report/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
// Values that round to zero carry no sign.
func Currency(amount decimal.Decimal) string {
	rounded := mathutil.Round(amount)
	formatted := formatPositiveCurrency(rounded.Abs())
	if rounded.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Plain returns the amount rounded to two places without separators (e.g., "-1234.56").
func Plain(amount decimal.Decimal) string {
	return mathutil.Round(amount).StringFixed(constants.DecimalPlaces)
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(constants.DecimalPlaces)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
