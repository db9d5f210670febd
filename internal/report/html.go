package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/iwvelando/finance-report/internal/summary"
	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/iwvelando/finance-report/pkg/format"
	"github.com/shopspring/decimal"
)

//go:embed templates/report.html.tmpl
var templateFiles embed.FS

var htmlTemplate = template.Must(template.ParseFS(templateFiles, "templates/report.html.tmpl"))

type htmlCard struct {
	Title string
	Value string
	Meta  string
}

type htmlCategoryRow struct {
	Category  string
	Total     string
	Kind      string
	PillClass string
}

type htmlDayRow struct {
	Date  string
	Total string
}

type htmlTransactionRow struct {
	Date        string
	Category    string
	Description string
	Amount      string
}

type htmlView struct {
	Period       string
	Activity     string
	KPIs         []htmlCard
	Insights     []htmlCard
	Categories   []htmlCategoryRow
	Days         []htmlDayRow
	Transactions []htmlTransactionRow
}

// HTML renders the summary as a standalone HTML document.
func HTML(s summary.Summary) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, buildHTMLView(s)); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.String(), nil
}

func buildHTMLView(s summary.Summary) htmlView {
	view := htmlView{
		Activity: fmt.Sprintf("%s transactions across %s categories.",
			count(s.TransactionCount), count(len(s.CategoryBreakdown))),
		KPIs: []htmlCard{
			{Title: "Total Income", Value: format.Currency(s.TotalIncome), Meta: "Sum of all credits in the period."},
			{Title: "Total Expenses", Value: format.Currency(s.TotalExpense), Meta: "Sum of all debits, shown as a positive value."},
			{Title: "Net Balance", Value: format.Currency(s.NetBalance), Meta: "Income minus expenses."},
			{Title: "Transactions", Value: count(s.TransactionCount), Meta: "Records included in this report."},
		},
		Insights: []htmlCard{
			{Title: "Category Coverage", Value: count(len(s.CategoryBreakdown)), Meta: "Distinct categories in the report."},
			{Title: "Revenue vs Expense Mix", Value: fmt.Sprintf("%d:%d", s.CategoryMix.Revenue, s.CategoryMix.Expense), Meta: "Categories netting positive against categories netting negative."},
			{Title: "Neutral Categories", Value: count(s.CategoryMix.Neutral), Meta: "Categories that net to zero within the period."},
			{Title: "Average Daily Movement", Value: format.Currency(s.AverageDaily), Meta: "Net balance divided by the number of active days."},
			{Title: "Average Transaction", Value: format.Currency(s.AverageTransaction), Meta: fmt.Sprintf("Mean net amount across %s transactions.", count(s.TransactionCount))},
		},
	}

	if s.Empty() {
		view.Period = "Reporting period unavailable."
	} else {
		view.Period = fmt.Sprintf("Reporting period: %s to %s",
			datetime.FormatDisplayDate(s.PeriodStart), datetime.FormatDisplayDate(s.PeriodEnd))
	}

	for _, category := range s.Categories() {
		total := s.CategoryBreakdown[category]
		kind, pill := classify(total)
		view.Categories = append(view.Categories, htmlCategoryRow{
			Category:  category,
			Total:     format.Currency(total),
			Kind:      kind,
			PillClass: pill,
		})
	}

	for _, day := range s.Days() {
		date, err := datetime.ParseDate(day)
		label := day
		if err == nil {
			label = datetime.FormatDisplayDate(date)
		}
		view.Days = append(view.Days, htmlDayRow{Date: label, Total: format.Currency(s.DailyTotals[day])})
	}

	for _, txn := range s.Transactions {
		view.Transactions = append(view.Transactions, htmlTransactionRow{
			Date:        datetime.FormatDisplayDate(txn.Date()),
			Category:    txn.Category(),
			Description: txn.Description(),
			Amount:      format.Currency(txn.Amount()),
		})
	}

	return view
}

func classify(total decimal.Decimal) (kind, pillClass string) {
	switch total.Sign() {
	case 1:
		return "Revenue", "pill--positive"
	case -1:
		return "Expense", "pill--negative"
	default:
		return "Neutral", "pill--neutral"
	}
}
