// Package cssmin minifies CSS text.
package cssmin

import (
	"fmt"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

const mediaType = "text/css"

// Options configures the minifier.
type Options struct {
	// Precision is the number of significant digits kept in numbers; 0 keeps them all.
	Precision int `koanf:"precision"`
}

// Minifier minifies stylesheets with a fixed configuration.
type Minifier struct {
	m *minify.M
}

// New returns a Minifier configured with opts.
func New(opts Options) *Minifier {
	m := minify.New()
	m.Add(mediaType, &css.Minifier{Precision: opts.Precision})
	return &Minifier{m: m}
}

// Minify returns the minified form of content.
func (mf *Minifier) Minify(content string) (string, error) {
	out, err := mf.m.String(mediaType, content)
	if err != nil {
		return "", fmt.Errorf("minify css: %w", err)
	}
	return out, nil
}
