package report

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-report/internal/summary"
	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/iwvelando/finance-report/pkg/format"
)

var markdownCell = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// Markdown renders the summary as a Markdown document.
func Markdown(s summary.Summary) string {
	var b strings.Builder
	b.WriteString("# Financial Summary\n\n")

	if s.Empty() {
		b.WriteString("No transactions supplied.\n")
		return b.String()
	}

	b.WriteString("## Overview\n\n")
	b.WriteString("| Metric | Value |\n| --- | ---: |\n")
	fmt.Fprintf(&b, "| Total income | %s |\n", format.Currency(s.TotalIncome))
	fmt.Fprintf(&b, "| Total expense | %s |\n", format.Currency(s.TotalExpense))
	fmt.Fprintf(&b, "| Net balance | **%s** |\n", format.Currency(s.NetBalance))
	fmt.Fprintf(&b, "| Transactions | %s |\n", count(s.TransactionCount))
	fmt.Fprintf(&b, "| Period | %s to %s |\n",
		datetime.FormatDate(s.PeriodStart), datetime.FormatDate(s.PeriodEnd))
	b.WriteString("\n")

	b.WriteString("## Totals by category\n\n")
	b.WriteString("| Category | Total |\n| --- | ---: |\n")
	for _, category := range s.Categories() {
		fmt.Fprintf(&b, "| %s | %s |\n", markdownCell.Replace(category), format.Currency(s.CategoryBreakdown[category]))
	}
	b.WriteString("\n")

	b.WriteString("## Totals by day\n\n")
	b.WriteString("| Date | Total |\n| --- | ---: |\n")
	for _, day := range s.Days() {
		fmt.Fprintf(&b, "| %s | %s |\n", day, format.Currency(s.DailyTotals[day]))
	}
	b.WriteString("\n")

	b.WriteString("## Transactions\n\n")
	b.WriteString("| Date | Category | Description | Amount |\n| --- | --- | --- | ---: |\n")
	for _, txn := range s.Transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			datetime.FormatDate(txn.Date()),
			markdownCell.Replace(txn.Category()),
			markdownCell.Replace(txn.Description()),
			format.Currency(txn.Amount()),
		)
	}

	return b.String()
}
