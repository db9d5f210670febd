// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-report/pkg/constants"
)

// OutputFormats lists the supported report formats.
var OutputFormats = []string{
	constants.OutputFormatMarkdown,
	constants.OutputFormatHTML,
	constants.OutputFormatJSON,
}

// InputFormats lists the supported input format hints.
var InputFormats = []string{
	constants.InputFormatAuto,
	constants.InputFormatJSON,
	constants.InputFormatCSV,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if !contains(OutputFormats, format) {
		return fmt.Errorf("expected output format of %s, got %q",
			strings.Join(OutputFormats, ", "), format)
	}
	return nil
}

// ValidateInputFormat checks if the input format hint is one of the supported hints.
func ValidateInputFormat(format string) error {
	if !contains(InputFormats, format) {
		return fmt.Errorf("expected input format of %s, got %q",
			strings.Join(InputFormats, ", "), format)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
