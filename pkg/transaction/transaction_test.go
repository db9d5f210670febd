package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	date := datetime.MustParseDate("2024-01-02")

	tests := []struct {
		name        string
		date        time.Time
		category    string
		wantErr     error
		wantCategory string
	}{
		{name: "valid", date: date, category: "rent", wantCategory: "rent"},
		{name: "category trimmed", date: date, category: "  food ", wantCategory: "food"},
		{name: "empty category", date: date, category: "", wantErr: ErrEmptyCategory},
		{name: "blank category", date: date, category: " \t", wantErr: ErrEmptyCategory},
		{name: "zero date", date: time.Time{}, category: "rent", wantErr: ErrZeroDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := New(tt.date, decimal.RequireFromString("-40.00"), tt.category, "monthly")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, txn.Category())
			assert.Equal(t, "monthly", txn.Description())
			assert.True(t, txn.Amount().Equal(decimal.RequireFromString("-40")))
			assert.True(t, txn.IsDebit())
			assert.False(t, txn.IsCredit())
		})
	}
}

func TestNewDropsTimeOfDay(t *testing.T) {
	at := time.Date(2024, 5, 6, 17, 45, 0, 0, time.UTC)
	txn, err := New(at, decimal.NewFromInt(1), "misc", "")
	require.NoError(t, err)
	assert.True(t, txn.Date().Equal(datetime.MustParseDate("2024-05-06")))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "100.00", want: "100"},
		{input: "-15.50", want: "-15.5"},
		{input: " 42 ", want: "42"},
		{input: "+3.25", want: "3.25"},
		{input: "1e3", want: "1000"},
		{input: "0", want: "0"},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "-Inf", wantErr: true},
		{input: "infinity", wantErr: true},
		{input: "1,000.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestLess(t *testing.T) {
	a := MustNew(datetime.MustParseDate("2024-01-01"), decimal.NewFromInt(5), "b", "")
	b := MustNew(datetime.MustParseDate("2024-01-02"), decimal.NewFromInt(1), "a", "")
	c := MustNew(datetime.MustParseDate("2024-01-01"), decimal.NewFromInt(5), "c", "")
	d := MustNew(datetime.MustParseDate("2024-01-01"), decimal.NewFromInt(-5), "b", "")

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(c))
	assert.True(t, d.Less(a))
	assert.False(t, a.Less(a))
}

func TestLessBreaksTiesOnAmountPrecision(t *testing.T) {
	date := datetime.MustParseDate("2024-01-01")
	short := MustNew(date, decimal.RequireFromString("1.5"), "x", "d")
	long := MustNew(date, decimal.RequireFromString("1.50"), "x", "d")

	assert.True(t, short.Less(long))
	assert.False(t, long.Less(short))
	assert.False(t, long.Less(long))
}

func TestEqualComparesAmountsNumerically(t *testing.T) {
	date := datetime.MustParseDate("2024-01-01")
	a := MustNew(date, decimal.RequireFromString("1.5"), "x", "d")
	b := MustNew(date, decimal.RequireFromString("1.50"), "x", "d")
	assert.True(t, a.Equal(b))
}
