package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iwvelando/finance-report/internal/summary"
	"github.com/iwvelando/finance-report/pkg/constants"
	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/shopspring/decimal"
)

type jsonReport struct {
	TotalIncome        string            `json:"total_income"`
	TotalExpense       string            `json:"total_expense"`
	NetBalance         string            `json:"net_balance"`
	TransactionCount   int               `json:"transaction_count"`
	CategoryBreakdown  map[string]string `json:"category_breakdown"`
	TotalsByDay        map[string]string `json:"totals_by_day"`
	PeriodStart        *string           `json:"period_start"`
	PeriodEnd          *string           `json:"period_end"`
	CategoryMix        jsonCategoryMix   `json:"category_mix"`
	AverageDaily       string            `json:"average_daily"`
	AverageTransaction string            `json:"average_transaction"`
	Transactions       []jsonTransaction `json:"transactions"`
}

type jsonCategoryMix struct {
	Revenue int `json:"revenue"`
	Expense int `json:"expense"`
	Neutral int `json:"neutral"`
}

type jsonTransaction struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// JSON renders the summary as a JSON object. Amounts are encoded as exact
// decimal strings with at least two fraction digits.
func JSON(s summary.Summary, pretty bool) (string, error) {
	doc := jsonReport{
		TotalIncome:       exactAmount(s.TotalIncome),
		TotalExpense:      exactAmount(s.TotalExpense),
		NetBalance:        exactAmount(s.NetBalance),
		TransactionCount:  s.TransactionCount,
		CategoryBreakdown: make(map[string]string, len(s.CategoryBreakdown)),
		TotalsByDay:       make(map[string]string, len(s.DailyTotals)),
		CategoryMix: jsonCategoryMix{
			Revenue: s.CategoryMix.Revenue,
			Expense: s.CategoryMix.Expense,
			Neutral: s.CategoryMix.Neutral,
		},
		AverageDaily:       exactAmount(s.AverageDaily),
		AverageTransaction: exactAmount(s.AverageTransaction),
		Transactions:       make([]jsonTransaction, 0, len(s.Transactions)),
	}

	for category, total := range s.CategoryBreakdown {
		doc.CategoryBreakdown[category] = exactAmount(total)
	}
	for day, total := range s.DailyTotals {
		doc.TotalsByDay[day] = exactAmount(total)
	}
	if !s.Empty() {
		start := datetime.FormatDate(s.PeriodStart)
		end := datetime.FormatDate(s.PeriodEnd)
		doc.PeriodStart = &start
		doc.PeriodEnd = &end
	}
	for _, txn := range s.Transactions {
		doc.Transactions = append(doc.Transactions, jsonTransaction{
			Date:        datetime.FormatDate(txn.Date()),
			Category:    txn.Category(),
			Description: txn.Description(),
			Amount:      exactAmount(txn.Amount()),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return buf.String(), nil
}

// exactAmount keeps every significant digit but pads to currency precision,
// so 100 and 100.000 both become "100.00" while 0.125 stays "0.125".
func exactAmount(d decimal.Decimal) string {
	places := int32(constants.DecimalPlaces)
	trimmed := d.String()
	if dot := strings.IndexByte(trimmed, '.'); dot >= 0 {
		if digits := int32(len(trimmed) - dot - 1); digits > places {
			places = digits
		}
	}
	return d.StringFixed(places)
}
