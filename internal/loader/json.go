package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/iwvelando/finance-report/pkg/transaction"
)

// decodeJSON expects a top-level array of objects with date, amount, category
// and description keys. Numbers are kept as json.Number so amounts never pass
// through float64.
func (l *Loader) decodeJSON(ctx context.Context, r io.Reader, name string) ([]transaction.Transaction, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload interface{}
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: name, Err: errors.New("empty JSON document")}
		}
		return nil, &ParseError{Path: name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: name, Err: errors.New("unexpected data after top-level JSON array")}
	}

	items, ok := payload.([]interface{})
	if !ok {
		return nil, &ParseError{Path: name, Err: errors.New("JSON input must be a list of objects")}
	}

	txns := make([]transaction.Transaction, 0, len(items))
	for i, item := range items {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		index := i + 1
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, &ParseError{Path: name, Record: index, Err: errors.New("expected an object")}
		}

		raw, err := jsonRecord(name, index, obj)
		if err != nil {
			return nil, err
		}

		txn, err := l.build(name, index, raw)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func jsonRecord(name string, index int, obj map[string]interface{}) (rawRecord, error) {
	var raw rawRecord
	fields := []struct {
		key      string
		dest     *string
		required bool
	}{
		{key: "date", dest: &raw.date, required: true},
		{key: "amount", dest: &raw.amount, required: true},
		{key: "category", dest: &raw.category},
		{key: "description", dest: &raw.description},
	}

	for _, f := range fields {
		value, present := obj[f.key]
		if !present || value == nil {
			if f.required {
				return rawRecord{}, &ParseError{Path: name, Record: index, Field: f.key, Err: errors.New("missing value")}
			}
			continue
		}

		switch v := value.(type) {
		case string:
			*f.dest = v
		case json.Number:
			*f.dest = v.String()
		default:
			return rawRecord{}, &ParseError{Path: name, Record: index, Field: f.key,
				Err: fmt.Errorf("unsupported value of type %T", value)}
		}
	}
	return raw, nil
}
