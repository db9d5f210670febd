// Package loader reads transaction records from JSON and CSV sources and
// converts them into validated transaction.Transaction values.
//
// Validation happens entirely here: a batch either loads completely or the
// first invalid record is reported as a *ParseError.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iwvelando/finance-report/pkg/constants"
	"github.com/iwvelando/finance-report/pkg/datetime"
	"github.com/iwvelando/finance-report/pkg/transaction"
	"go.uber.org/zap"
)

// Format selects the decoder used for a source.
type Format string

const (
	FormatAuto Format = constants.InputFormatAuto
	FormatJSON Format = constants.InputFormatJSON
	FormatCSV  Format = constants.InputFormatCSV
)

// Options adjusts how raw records are converted.
type Options struct {
	// DefaultCategory replaces a blank category when set. When empty, records
	// with a blank category are rejected.
	DefaultCategory string
}

// Loader loads transaction batches.
type Loader struct {
	logger *zap.Logger
	opts   Options
}

// New constructs a Loader.
func New(logger *zap.Logger, opts Options) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.DefaultCategory = strings.TrimSpace(opts.DefaultCategory)
	return &Loader{logger: logger, opts: opts}
}

// Load reads every transaction from path using a Loader with default options.
func Load(ctx context.Context, path string, hint Format) ([]transaction.Transaction, error) {
	return New(nil, Options{}).Load(ctx, path, hint)
}

// Load reads every transaction from path. With FormatAuto (or an empty hint)
// the decoder is chosen from the file extension.
func (l *Loader) Load(ctx context.Context, path string, hint Format) ([]transaction.Transaction, error) {
	format, err := ResolveFormat(path, hint)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path, Err: errors.New("is a directory")}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			l.logger.Warn("failed to close transaction source",
				zap.String("op", "loader.Load"),
				zap.String("path", path),
				zap.Error(closeErr),
			)
		}
	}()

	return l.LoadReader(ctx, file, path, format)
}

// LoadReader decodes transactions from r. name is only used in error messages
// and logs. format must be FormatJSON or FormatCSV.
func (l *Loader) LoadReader(ctx context.Context, r io.Reader, name string, format Format) ([]transaction.Transaction, error) {
	var (
		txns []transaction.Transaction
		err  error
	)

	switch format {
	case FormatJSON:
		txns, err = l.decodeJSON(ctx, r, name)
	case FormatCSV:
		txns, err = l.decodeCSV(ctx, r, name)
	default:
		return nil, &UnsupportedFormatError{Path: name, Format: string(format)}
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("loaded transactions",
		zap.String("op", "loader.LoadReader"),
		zap.String("source", name),
		zap.String("format", string(format)),
		zap.Int("count", len(txns)),
	)
	return txns, nil
}

// ResolveFormat returns the concrete format for path given a hint.
func ResolveFormat(path string, hint Format) (Format, error) {
	switch hint {
	case FormatJSON, FormatCSV:
		return hint, nil
	case FormatAuto, "":
	default:
		return "", &UnsupportedFormatError{Path: path, Format: string(hint)}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", &UnsupportedFormatError{Path: path}
	}
}

// rawRecord is a record as read from a source, before validation.
type rawRecord struct {
	date        string
	amount      string
	category    string
	description string
}

func (l *Loader) build(name string, index int, raw rawRecord) (transaction.Transaction, error) {
	if strings.TrimSpace(raw.date) == "" {
		return transaction.Transaction{}, &ParseError{Path: name, Record: index, Field: "date", Err: errors.New("missing value")}
	}
	date, err := parseDate(raw.date)
	if err != nil {
		return transaction.Transaction{}, &ParseError{Path: name, Record: index, Field: "date", Err: err}
	}

	amount, err := transaction.ParseAmount(raw.amount)
	if err != nil {
		return transaction.Transaction{}, &ParseError{Path: name, Record: index, Field: "amount", Err: err}
	}

	category := strings.TrimSpace(raw.category)
	if category == "" {
		category = l.opts.DefaultCategory
	}

	txn, err := transaction.New(date, amount, category, raw.description)
	if err != nil {
		field := ""
		switch {
		case errors.Is(err, transaction.ErrEmptyCategory):
			field = "category"
		case errors.Is(err, transaction.ErrZeroDate):
			field = "date"
		}
		return transaction.Transaction{}, &ParseError{Path: name, Record: index, Field: field, Err: err}
	}
	return txn, nil
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("loading cancelled: %w", err)
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := datetime.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected date as %s, got %q", datetime.DateLayout, raw)
	}
	return date, nil
}
