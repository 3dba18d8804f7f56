package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"github.com/yacobolo/csscollect/internal/cssmin"
	"github.com/yacobolo/csscollect/internal/fsutil"
)

// DefaultCSSFile is the base name of generated stylesheets.
const DefaultCSSFile = "style"

// MinifyFunc minifies merged CSS.
type MinifyFunc func(css string) (string, error)

// URLContext describes one url() occurrence found in a collected stylesheet.
type URLContext struct {
	URL        string // as written, without quotes
	SourceFile string // absolute path of the stylesheet containing it
	TargetDir  string // directory the merged CSS will be served from
	Default    string // the rewrite applied when no URLRewriter is set
	Relative   bool   // URL is neither absolute nor scheme-prefixed
}

// URLRewriteFunc decides the replacement for a url() occurrence.
// Returning ok=false keeps the original URL.
type URLRewriteFunc func(ctx URLContext) (replacement string, ok bool)

// Settings configures one collection run. Start from DefaultSettings: the zero
// value turns every boolean option off.
type Settings struct {
	BaseDir   string // fallback for SourceDir and DestDir
	SourceDir string // base for resolving link hrefs (default: BaseDir, else cwd)
	DestDir   string // base for generated files and their hrefs (default: BaseDir, else cwd)
	CSSFile   string // base name of generated files, without extension
	Encoding  string // WHATWG label used to read stylesheets

	CollectStyle     bool // merge <style> bodies too
	Include          bool // emit merged CSS inline instead of into files
	RemoveEmptyRef   bool // drop links whose file is empty
	RemoveEmptyStyle bool // drop empty <style> elements
	RemoveSourceFile bool // delete collected stylesheet files
	WarnNotFound     bool // warn about links to missing files

	Minify        bool
	MinifyOptions cssmin.Options
	Minifier      MinifyFunc // replaces the built-in minifier; implies Minify

	SkipCSSFile []string // stylesheets left alone, see isFileInList

	UpdateURL   bool
	URLRewriter URLRewriteFunc // overrides the default rewrite; implies UpdateURL

	// Callback, when set, receives the result in addition to the return value.
	Callback func(errs []error, result *Result)

	Logger *zap.Logger
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		CSSFile:          DefaultCSSFile,
		Encoding:         fsutil.DefaultEncoding,
		CollectStyle:     true,
		RemoveEmptyRef:   true,
		RemoveEmptyStyle: true,
		WarnNotFound:     true,
	}
}

// run is the resolved, immutable view of Settings for one invocation.
type run struct {
	settings  Settings
	sourceDir string
	destDir   string
	cssFile   string
	enc       encoding.Encoding
	minify    MinifyFunc
	rewrite   URLRewriteFunc
	log       *zap.Logger
	warnings  warningCollector
}

func newRun(s Settings) (*run, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	enc, err := fsutil.LookupEncoding(s.Encoding)
	if err != nil {
		return nil, err
	}

	sourceDir := firstNonEmpty(s.SourceDir, s.BaseDir)
	if sourceDir == "" || !fsutil.DirExists(sourceDir) {
		sourceDir = cwd
	}
	if sourceDir, err = filepath.Abs(sourceDir); err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}
	destDir := firstNonEmpty(s.DestDir, s.BaseDir, cwd)
	if destDir, err = filepath.Abs(destDir); err != nil {
		return nil, fmt.Errorf("resolve dest dir: %w", err)
	}

	log := s.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &run{
		settings:  s,
		sourceDir: sourceDir,
		destDir:   destDir,
		cssFile:   firstNonEmpty(s.CSSFile, DefaultCSSFile),
		enc:       enc,
		log:       log.Named("collector"),
	}

	switch {
	case s.Minifier != nil:
		r.minify = s.Minifier
	case s.Minify:
		r.minify = cssmin.New(s.MinifyOptions).Minify
	}

	switch {
	case s.URLRewriter != nil:
		r.rewrite = s.URLRewriter
	case s.UpdateURL:
		r.rewrite = defaultURLRewrite
	}

	return r, nil
}

// removeEmpty reports whether an empty tag of kind k should be dropped.
func (r *run) removeEmpty(k Kind) bool {
	if k == KindLink {
		return r.settings.RemoveEmptyRef
	}
	return r.settings.RemoveEmptyStyle
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
