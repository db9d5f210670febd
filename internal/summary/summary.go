// Package summary derives the aggregate figures shown in a financial report
// from a batch of validated transactions.
//
// Summarize is the single source of truth for every number a renderer shows.
// It is a pure function: no I/O, no shared state and no failure modes.
package summary

import (
	"sort"
	"time"

	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/iwvelando/finance-report/pkg/mathutil"
	"github.com/iwvelando/finance-report/pkg/transaction"
	"github.com/shopspring/decimal"
)

// CategoryMix counts categories by the sign of their net total.
type CategoryMix struct {
	Revenue int
	Expense int
	Neutral int
}

// Summary holds all derived report information for one batch.
//
// TotalExpense is stored as the absolute value of the sum of negative amounts,
// so NetBalance == TotalIncome - TotalExpense.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	NetBalance        decimal.Decimal
	CategoryBreakdown map[string]decimal.Decimal
	TransactionCount  int

	// DailyTotals maps a date in datetime.DateLayout to the signed sum of
	// that day's amounts.
	DailyTotals map[string]decimal.Decimal
	PeriodStart time.Time
	PeriodEnd   time.Time

	CategoryMix        CategoryMix
	AverageDaily       decimal.Decimal
	AverageTransaction decimal.Decimal

	// Transactions in canonical order (see transaction.Transaction.Less).
	Transactions []transaction.Transaction
}

// Summarize computes the Summary of transactions. The input slice is not
// modified and its order does not affect the result.
func Summarize(transactions []transaction.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	byDay := make(map[string]decimal.Decimal)
	var start, end time.Time

	for _, txn := range transactions {
		amount := txn.Amount()
		switch amount.Sign() {
		case 1:
			income = income.Add(amount)
		case -1:
			expense = expense.Add(amount.Abs())
		}

		byCategory[txn.Category()] = byCategory[txn.Category()].Add(amount)

		day := datetime.FormatDate(txn.Date())
		byDay[day] = byDay[day].Add(amount)

		if start.IsZero() || txn.Date().Before(start) {
			start = txn.Date()
		}
		if end.IsZero() || txn.Date().After(end) {
			end = txn.Date()
		}
	}

	net := income.Sub(expense)

	ordered := make([]transaction.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Less(ordered[j])
	})

	return Summary{
		TotalIncome:        income,
		TotalExpense:       expense,
		NetBalance:         net,
		CategoryBreakdown:  byCategory,
		TransactionCount:   len(transactions),
		DailyTotals:        byDay,
		PeriodStart:        start,
		PeriodEnd:          end,
		CategoryMix:        mixOf(byCategory),
		AverageDaily:       mathutil.Average(net, len(byDay)),
		AverageTransaction: mathutil.Average(net, len(transactions)),
		Transactions:       ordered,
	}
}

func mixOf(byCategory map[string]decimal.Decimal) CategoryMix {
	var mix CategoryMix
	for _, total := range byCategory {
		switch total.Sign() {
		case 1:
			mix.Revenue++
		case -1:
			mix.Expense++
		default:
			mix.Neutral++
		}
	}
	return mix
}

// Empty reports whether the summary was built from no transactions.
func (s Summary) Empty() bool {
	return s.TransactionCount == 0
}

// Categories returns the category labels in ascending order.
func (s Summary) Categories() []string {
	return sortedKeys(s.CategoryBreakdown)
}

// Days returns the dates with activity in ascending order.
func (s Summary) Days() []string {
	return sortedKeys(s.DailyTotals)
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two summaries carry the same values. Decimal values
// are compared numerically.
func (s Summary) Equal(other Summary) bool {
	if !s.TotalIncome.Equal(other.TotalIncome) ||
		!s.TotalExpense.Equal(other.TotalExpense) ||
		!s.NetBalance.Equal(other.NetBalance) ||
		s.TransactionCount != other.TransactionCount ||
		!s.PeriodStart.Equal(other.PeriodStart) ||
		!s.PeriodEnd.Equal(other.PeriodEnd) ||
		s.CategoryMix != other.CategoryMix ||
		!s.AverageDaily.Equal(other.AverageDaily) ||
		!s.AverageTransaction.Equal(other.AverageTransaction) {
		return false
	}
	if !equalTotals(s.CategoryBreakdown, other.CategoryBreakdown) ||
		!equalTotals(s.DailyTotals, other.DailyTotals) {
		return false
	}
	if len(s.Transactions) != len(other.Transactions) {
		return false
	}
	for i := range s.Transactions {
		if !s.Transactions[i].Equal(other.Transactions[i]) {
			return false
		}
	}
	return true
}

func equalTotals(a, b map[string]decimal.Decimal) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}
