// Package transaction defines the validated transaction record shared by the
// loader, the summarizer and the renderers.
//
// A Transaction can only be obtained through New, so every value that reaches
// the summarizer has a date, a non-empty category and an exact decimal amount.
package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/shopspring/decimal"
)

var (
	ErrZeroDate      = errors.New("date is required")
	ErrEmptyCategory = errors.New("category is required")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Transaction is one financial event. Positive amounts are credits (income),
// negative amounts are debits (expense).
type Transaction struct {
	date        time.Time
	amount      decimal.Decimal
	category    string
	description string
}

// New builds a Transaction. The category is trimmed and must not be empty and
// the date must be set; any time-of-day component is dropped.
func New(date time.Time, amount decimal.Decimal, category, description string) (Transaction, error) {
	if date.IsZero() {
		return Transaction{}, ErrZeroDate
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return Transaction{}, ErrEmptyCategory
	}
	return Transaction{
		date:        datetime.Truncate(date),
		amount:      amount,
		category:    category,
		description: description,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixtures.
func MustNew(date time.Time, amount decimal.Decimal, category, description string) Transaction {
	txn, err := New(date, amount, category, description)
	if err != nil {
		panic(err)
	}
	return txn
}

// ParseAmount parses a decimal amount such as "-15.50" or "1e3". Empty,
// non-numeric and non-finite values are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	switch strings.ToLower(strings.TrimLeft(trimmed, "+-")) {
	case "nan", "inf", "infinity":
		return decimal.Zero, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, raw)
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return amount, nil
}

// Date returns the calendar date (midnight UTC).
func (t Transaction) Date() time.Time { return t.date }

// Amount returns the signed amount.
func (t Transaction) Amount() decimal.Decimal { return t.amount }

// Category returns the category label.
func (t Transaction) Category() string { return t.category }

// Description returns the free-text description, possibly empty.
func (t Transaction) Description() string { return t.description }

// IsCredit reports whether the amount is strictly positive.
func (t Transaction) IsCredit() bool { return t.amount.IsPositive() }

// IsDebit reports whether the amount is strictly negative.
func (t Transaction) IsDebit() bool { return t.amount.IsNegative() }

// Equal reports whether two transactions carry the same values. Amounts are
// compared numerically, so 1.5 and 1.50 are equal.
func (t Transaction) Equal(other Transaction) bool {
	return t.date.Equal(other.date) &&
		t.amount.Equal(other.amount) &&
		t.category == other.category &&
		t.description == other.description
}

// Less orders transactions by date, category, amount and description. Amounts
// that are numerically equal but written with different precision order the
// shorter form first, so the order is total.
func (t Transaction) Less(other Transaction) bool {
	if !t.date.Equal(other.date) {
		return t.date.Before(other.date)
	}
	if t.category != other.category {
		return t.category < other.category
	}
	if c := t.amount.Cmp(other.amount); c != 0 {
		return c < 0
	}
	if t.description != other.description {
		return t.description < other.description
	}
	return t.amount.Exponent() > other.amount.Exponent()
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %q", datetime.FormatDate(t.date), t.category, t.amount.String(), t.description)
}
