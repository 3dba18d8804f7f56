// Package report prints the outcome of a CLI run: one line per warning or
// failure in a compiler-like format, a summary, or a JSON document.
package report

import "github.com/yacobolo/csscollect/internal/collector"

// ToolName is appended to issue lines.
const ToolName = "csscollect"

// FileResult is the outcome for one processed document.
type FileResult struct {
	File     string
	Changed  bool
	Warnings []collector.Warning
	Err      error
}

// Config controls how results are printed.
type Config struct {
	UseColors     bool
	PrintTags     bool // print the markup of the offending tag under each warning
	PrintToolName bool
}

// OutputFormat represents the report format
type OutputFormat string

const (
	// OutputIssues shows warnings and failures followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}
