package collector

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/csscollect/internal/cssurl"
	"github.com/yacobolo/csscollect/internal/fsutil"
)

// banner returns the comment that precedes a tag's CSS in merged output.
func banner(c *Candidate) string {
	if c.Kind == KindLink {
		return "/*----- " + c.Ref + " -----*/\n\n"
	}
	return "/*----- Style tag #" + c.Ref + " -----*/\n\n"
}

// merge concatenates the CSS of a group. targetDir is where the merged CSS
// will live and is used for url() rewriting. Source files are deleted when
// configured, and every element but the anchor is removed from the document.
func (r *run) merge(g Group, targetDir string) (string, error) {
	var sb strings.Builder
	for i, c := range g.Tags {
		if c.NonEmpty {
			content := c.Content
			if c.Kind == KindLink && r.rewrite != nil {
				content = r.rewriteURLs(content, c.SourceFile, targetDir)
			}
			sb.WriteString(banner(c))
			sb.WriteString(content)
			sb.WriteString("\n\n")
		}
		if r.settings.RemoveSourceFile && c.SourceFile != "" {
			if err := fsutil.Remove(c.SourceFile); err != nil {
				return "", err
			}
			r.log.Debug("removed source stylesheet", zap.String("file", c.SourceFile))
		}
		if i > 0 {
			c.Element.Remove()
		}
	}
	return sb.String(), nil
}

func (r *run) rewriteURLs(content, sourceFile, targetDir string) string {
	return cssurl.Rewrite(content, func(url string) (string, bool) {
		ctx := URLContext{
			URL:        url,
			SourceFile: sourceFile,
			TargetDir:  targetDir,
			Default:    url,
			Relative:   cssurl.IsRelative(url),
		}
		if ctx.Relative {
			ctx.Default = relocate(url, sourceFile, targetDir)
		}
		return r.rewrite(ctx)
	})
}

// defaultURLRewrite points relative URLs at the same resource from TargetDir.
func defaultURLRewrite(ctx URLContext) (string, bool) {
	if !ctx.Relative {
		return "", false
	}
	return ctx.Default, true
}

// relocate expresses url, relative to sourceFile, as a path relative to targetDir.
func relocate(url, sourceFile, targetDir string) string {
	abs := filepath.Join(filepath.Dir(sourceFile), filepath.FromSlash(url))
	rel, err := filepath.Rel(targetDir, abs)
	if err != nil {
		return url
	}
	return filepath.ToSlash(rel)
}
