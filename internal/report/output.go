package report

import (
	"io"
	"os"
)

// WriteOutput writes the run results in the specified format
func WriteOutput(w io.Writer, results []FileResult, format OutputFormat, config Config) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, results); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(results)
		reporter.PrintSummary(results)
	}
}
