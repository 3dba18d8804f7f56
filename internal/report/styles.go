package report

import "github.com/charmbracelet/lipgloss"

// Report styles. Lipgloss degrades colors to what the terminal supports.
var (
	// styleFile prefixes each issue line with the HTML document it belongs to.
	styleFile = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleFailure marks documents that could not be collected, and the
	// summary when any did.
	styleFailure = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// styleWarned is the summary when stylesheets were missing.
	styleWarned = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// styleClean is the summary of a run without warnings or failures.
	styleClean = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// styleMuted renders the "(csscollect)" suffix and the offending <link> markup.
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
