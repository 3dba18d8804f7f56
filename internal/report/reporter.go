package report

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Reporter handles formatting and outputting run results
type Reporter struct {
	w             io.Writer
	useColors     bool
	printTags     bool
	printToolName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:             w,
		useColors:     ShouldUseColors(config.UseColors),
		printTags:     config.PrintTags,
		printToolName: config.PrintToolName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs failures and warnings, ordered by file
func (r *Reporter) PrintIssues(results []FileResult) {
	sorted := make([]FileResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].File < sorted[j].File
	})

	for _, res := range sorted {
		if res.Err != nil {
			r.printLine(res.File, RenderStyle(styleFailure, res.Err.Error(), r.useColors))
			continue
		}
		// Warnings keep document order within a file
		for _, w := range res.Warnings {
			r.printLine(res.File, w.Message)
			if r.printTags && w.Tag != "" {
				fmt.Fprintf(r.w, "\t%s\n", RenderStyle(styleMuted, w.Tag, r.useColors))
			}
		}
	}
}

// printLine formats a single issue: file: message (tool)
func (r *Reporter) printLine(file, message string) {
	suffix := ""
	if r.printToolName {
		suffix = fmt.Sprintf(" (%s)", ToolName)
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(styleFile, file+":", r.useColors),
		message,
		RenderStyle(styleMuted, suffix, r.useColors))
}

// PrintSummary outputs the processed/changed/warning counts
func (r *Reporter) PrintSummary(results []FileResult) {
	var changed, warnings, failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		if res.Changed {
			changed++
		}
		warnings += len(res.Warnings)
	}

	line := fmt.Sprintf("%s processed, %d changed, %s",
		pluralizeCount(len(results), "file", "files"),
		changed,
		pluralizeCount(warnings, "warning", "warnings"))

	style := styleClean
	switch {
	case failed > 0:
		line += fmt.Sprintf(", %d failed", failed)
		style = styleFailure
	case warnings > 0:
		style = styleWarned
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(style, line, r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
