// Package constants provides shared constants for the finance-report application.
package constants

// DateLayout is the format expected for transaction dates in input files and
// is also the date format used in rendered reports.
const DateLayout = "2006-01-02"

// DisplayDateLayout is the human-friendly date format used in HTML reports.
const DisplayDateLayout = "Jan 02, 2006"

// Financial constants
const (
	// DecimalPlaces is the number of places currency values are displayed with
	DecimalPlaces = 2
)

// Output format constants
const (
	// OutputFormatMarkdown renders the report as Markdown
	OutputFormatMarkdown = "markdown"

	// OutputFormatHTML renders the report as a standalone HTML document
	OutputFormatHTML = "html"

	// OutputFormatJSON renders the report as JSON
	OutputFormatJSON = "json"
)

// Input format constants
const (
	// InputFormatAuto selects the loader from the file extension
	InputFormatAuto = "auto"

	// InputFormatJSON is a JSON array of transaction objects
	InputFormatJSON = "json"

	// InputFormatCSV is a CSV file with a header row
	InputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "finance-report.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes every environment variable override
	EnvPrefix = "FINANCE_REPORT"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for transaction files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
