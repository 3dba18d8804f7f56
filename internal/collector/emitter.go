package collector

import (
	"fmt"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/yacobolo/csscollect/internal/fsutil"
	"github.com/yacobolo/csscollect/internal/htmldoc"
)

// outputFile returns the absolute path of the stylesheet generated for the
// group at index. The numeric suffix is only used when there are several groups.
func (r *run) outputFile(index, total int) string {
	name := r.cssFile
	if total > 1 {
		name += strconv.Itoa(index + 1)
	}
	return filepath.Join(r.destDir, filepath.FromSlash(name)+cssExt)
}

// targetDir is the directory merged CSS of the group at index is served from.
func (r *run) targetDir(index, total int) string {
	if r.settings.Include {
		return r.destDir
	}
	return filepath.Dir(r.outputFile(index, total))
}

// emit writes merged CSS for a group and updates its anchor element.
func (r *run) emit(g Group, index, total int, merged string) error {
	anchor := g.Anchor()
	if !hasWord(merged) {
		if r.removeEmpty(anchor.Kind) {
			anchor.Element.Remove()
		}
		return nil
	}

	if r.minify != nil {
		var err error
		if merged, err = r.minify(merged); err != nil {
			return fmt.Errorf("group %d: %w", index+1, err)
		}
	}

	if r.settings.Include {
		anchor.Element.ReplaceWith(htmldoc.StyleMarkup(merged))
		r.log.Debug("inlined group", zap.Int("group", index+1), zap.Int("tags", len(g.Tags)))
		return nil
	}

	file := r.outputFile(index, total)
	if err := fsutil.WriteText(file, merged); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	href, err := filepath.Rel(r.destDir, file)
	if err != nil {
		return fmt.Errorf("relative path of %s: %w", file, err)
	}
	href = filepath.ToSlash(href)

	if anchor.Kind == KindLink {
		anchor.Element.SetAttr("href", href)
	} else {
		anchor.Element.ReplaceWith(htmldoc.LinkMarkup(href))
	}
	r.log.Debug("wrote group", zap.Int("group", index+1), zap.String("file", file), zap.Int("tags", len(g.Tags)))
	return nil
}
