// Package collector gathers the stylesheets referenced by an HTML document into
// one or a few stylesheets, either inline or written to files.
//
// A run has two phases. The scanner walks <link> and <style> elements in
// document order, reads referenced files and partitions eligible tags into
// groups; it does not touch the document. The second phase removes dropped
// tags and, per group, merges the CSS, writes it out and rewrites the anchor
// element. The document is re-rendered only when something changed.
package collector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yacobolo/csscollect/internal/fsutil"
	"github.com/yacobolo/csscollect/internal/htmldoc"
)

// Collect consolidates the stylesheets referenced by content.
//
// Missing stylesheet files are reported in Result.Warnings. Filesystem and
// minification failures are returned as errors; files already written by
// earlier groups are left in place.
func Collect(content string, settings Settings) (*Result, error) {
	r, err := newRun(settings)
	if err != nil {
		return nil, err
	}

	result := &Result{Content: content}
	doc, err := htmldoc.Parse(content)
	if err != nil {
		return nil, err
	}

	if elems := doc.Find("link", "style"); len(elems) > 0 {
		p, err := r.scan(elems)
		if err != nil {
			return nil, err
		}
		if err := r.apply(p); err != nil {
			return nil, err
		}
		if len(p.groups) > 0 || len(p.drops) > 0 {
			if result.Content, err = doc.Render(); err != nil {
				return nil, err
			}
		}
		r.log.Debug("collected",
			zap.Int("tags", len(elems)),
			zap.Int("groups", len(p.groups)),
			zap.Int("dropped", len(p.drops)))
	}

	result.Warnings = r.warnings.result()
	if settings.Callback != nil {
		settings.Callback(result.Errors, result)
	}
	return result, nil
}

// apply performs the document and filesystem changes described by p.
func (r *run) apply(p *plan) error {
	for _, c := range p.drops {
		c.Element.Remove()
		if c.Kind == KindLink && r.settings.RemoveSourceFile {
			if err := fsutil.Remove(c.SourceFile); err != nil {
				return err
			}
		}
	}

	total := len(p.groups)
	for i, g := range p.groups {
		merged, err := r.merge(g, r.targetDir(i, total))
		if err != nil {
			return fmt.Errorf("merge group %d: %w", i+1, err)
		}
		if err := r.emit(g, i, total, merged); err != nil {
			return err
		}
	}
	return nil
}
