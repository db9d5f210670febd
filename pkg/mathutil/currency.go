// Package mathutil provides common decimal helpers for currency values.
package mathutil

import (
	"github.com/iwvelando/finance-report/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Halves round away from zero.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.DecimalPlaces)
}

// Average divides total by count and rounds to currency precision. A zero
// count yields zero.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), constants.DecimalPlaces)
}
