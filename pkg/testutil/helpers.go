// Package testutil provides common fixtures for testing.
package testutil

import (
	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/iwvelando/finance-report/pkg/transaction"
	"github.com/shopspring/decimal"
)

// Txn builds a transaction from string inputs and panics if they are invalid.
func Txn(date, amount, category, description string) transaction.Transaction {
	return transaction.MustNew(
		datetime.MustParseDate(date),
		decimal.RequireFromString(amount),
		category,
		description,
	)
}

// SampleTransactions returns the salary/rent/food batch used throughout the
// tests: income 100.00, expenses 55.50, net 44.50.
func SampleTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		Txn("2024-01-01", "100.00", "salary", "January pay"),
		Txn("2024-01-02", "-40.00", "rent", "Room share"),
		Txn("2024-01-03", "-15.50", "food", "Groceries"),
	}
}

// MixedTransactions returns a larger batch with repeated categories, repeated
// days, zero amounts and a category that nets to zero.
func MixedTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		Txn("2024-01-01", "1200.00", "Sales", "Invoice #1001"),
		Txn("2024-01-02", "800.00", "Subscriptions", "Monthly recurring"),
		Txn("2024-01-03", "-600.00", "Rent", "Office lease"),
		Txn("2024-01-03", "-12.35", "Supplies", "Paper"),
		Txn("2024-01-04", "0", "Adjustments", "No-op correction"),
		Txn("2024-01-04", "25.00", "Refunds", "Vendor refund"),
		Txn("2024-01-05", "-25.00", "Refunds", "Customer refund"),
		Txn("2024-01-05", "0.10", "Interest", "Savings"),
		Txn("2024-01-05", "0.20", "Interest", "Savings"),
		Txn("2024-01-06", "-99.99", "Supplies", "Toner"),
		Txn("2024-01-06", "350.50", "Sales", "Invoice #1002"),
		Txn("2024-01-07", "-0.01", "Fees", "Bank fee"),
	}
}
