package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finance-report/pkg/transaction"
)

const utf8BOM = "\ufeff"

// decodeCSV expects a header row. Columns are matched by name, ignoring case
// and order; date and amount are required, category and description are
// optional.
func (l *Loader) decodeCSV(ctx context.Context, r io.Reader, name string) ([]transaction.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []transaction.Transaction{}, nil
	}
	if err != nil {
		return nil, &ParseError{Path: name, Err: fmt.Errorf("failed to read header: %w", err)}
	}

	columns := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(col))
		if _, dup := columns[key]; dup && key != "" {
			return nil, &ParseError{Path: name, Field: key, Err: errors.New("duplicate column")}
		}
		columns[key] = i
	}
	for _, required := range []string{"date", "amount"} {
		if _, ok := columns[required]; !ok {
			return nil, &ParseError{Path: name, Field: required, Err: errors.New("missing column in header")}
		}
	}

	column := func(record []string, key string) string {
		if i, ok := columns[key]; ok {
			return record[i]
		}
		return ""
	}

	txns := []transaction.Transaction{}
	for index := 1; ; index++ {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: name, Record: index, Err: err}
		}

		txn, err := l.build(name, index, rawRecord{
			date:        column(record, "date"),
			amount:      column(record, "amount"),
			category:    column(record, "category"),
			description: column(record, "description"),
		})
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
