// Package report renders a summary.Summary as Markdown, HTML or JSON.
//
// Rendering is a pure function of the summary and the options: every figure
// shown is read from the summary, never recomputed here.
package report

import (
	"errors"
	"fmt"

	"github.com/iwvelando/finance-report/internal/summary"
	"github.com/iwvelando/finance-report/pkg/constants"
	"github.com/iwvelando/finance-report/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format is a report output format.
type Format string

const (
	FormatMarkdown Format = constants.OutputFormatMarkdown
	FormatHTML     Format = constants.OutputFormatHTML
	FormatJSON     Format = constants.OutputFormatJSON
)

// ErrUnsupportedFormat is returned for formats other than markdown, html and json.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Options adjusts rendering.
type Options struct {
	// Pretty indents JSON output.
	Pretty bool
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	if err := validation.ValidateOutputFormat(name); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return Format(name), nil
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatJSON:
		return "application/json"
	default:
		return "text/markdown; charset=utf-8"
	}
}

// Render renders s in the given format.
func Render(s summary.Summary, f Format, opts Options) (string, error) {
	switch f {
	case FormatMarkdown:
		return Markdown(s), nil
	case FormatHTML:
		return HTML(s)
	case FormatJSON:
		return JSON(s, opts.Pretty)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

var printer = message.NewPrinter(language.English)

// count formats an integer with thousands separators, e.g. 12,345.
func count(n int) string {
	return printer.Sprintf("%d", n)
}
