package csscollect

import "github.com/yacobolo/csscollect/internal/collector"

type (
	// Settings configures a collection run. See DefaultSettings.
	Settings = collector.Settings
	// FileSettings configures CollectFile.
	FileSettings = collector.FileSettings
	// Result is the outcome of a collection run.
	Result = collector.Result
	// Warning reports a stylesheet link whose file does not exist.
	Warning = collector.Warning
	// URLContext describes a url() occurrence offered to a URLRewriteFunc.
	URLContext = collector.URLContext
	// URLRewriteFunc customizes url() rewriting.
	URLRewriteFunc = collector.URLRewriteFunc
	// MinifyFunc replaces the built-in CSS minifier.
	MinifyFunc = collector.MinifyFunc
)

// DefaultSettings returns settings with the documented defaults: style tags
// are collected, empty tags removed, missing files reported, output goes to
// style.css.
func DefaultSettings() Settings {
	return collector.DefaultSettings()
}

// Collect merges the stylesheets referenced by content and returns the
// rewritten document.
func Collect(content string, settings Settings) (*Result, error) {
	return collector.Collect(content, settings)
}

// CollectFile processes the HTML file at path and saves the result when it changed.
func CollectFile(path string, settings FileSettings) (*Result, error) {
	return collector.CollectFile(path, settings)
}
