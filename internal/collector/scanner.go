package collector

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/yacobolo/csscollect/internal/fsutil"
	"github.com/yacobolo/csscollect/internal/htmldoc"
)

const cssType = "text/css"

// wordPattern decides emptiness: whitespace-only or punctuation-only CSS is empty.
var wordPattern = regexp.MustCompile(`\w`)

func hasWord(s string) bool {
	return wordPattern.MatchString(s)
}

// plan is the scanner's output. Nothing in the document has been changed yet.
type plan struct {
	groups []Group
	// drops are empty tags removed on their own, outside any group.
	drops []*Candidate
}

// scanner classifies stylesheet elements and builds groups.
type scanner struct {
	r          *run
	builder    *groupBuilder
	plan       *plan
	styleCount int
}

// scan walks elems in document order. It reads stylesheet files and records
// warnings but leaves the document untouched.
func (r *run) scan(elems []*htmldoc.Element) (*plan, error) {
	s := &scanner{r: r, builder: newGroupBuilder(), plan: &plan{}}
	for _, elem := range elems {
		if t, ok := elem.Attr("type"); ok && t != "" && t != cssType {
			r.log.Debug("ignoring element with foreign type", zap.String("tag", elem.Name()), zap.String("type", t))
			continue
		}

		switch elem.Name() {
		case "link":
			if err := s.scanLink(elem); err != nil {
				return nil, err
			}
		case "style":
			s.route(&Candidate{
				Kind:     KindStyle,
				Element:  elem,
				Content:  elem.Text(),
				NonEmpty: hasWord(elem.Text()),
			})
		}
	}
	s.plan.groups = s.builder.result()
	return s.plan, nil
}

func (s *scanner) scanLink(elem *htmldoc.Element) error {
	rel, _ := elem.Attr("rel")
	href, _ := elem.Attr("href")
	if rel != "stylesheet" || href == "" {
		return nil
	}

	file := resolveRef(s.r.sourceDir, href)
	if isFileInList(href, s.r.settings.SkipCSSFile) {
		s.r.log.Debug("skipping listed stylesheet", zap.String("ref", href))
		s.builder.interrupt()
		return nil
	}

	exists, err := fsutil.Exists(file)
	if err != nil {
		return fmt.Errorf("stylesheet %q: %w", href, err)
	}
	if !exists {
		if s.r.settings.WarnNotFound {
			tag, err := elem.OuterHTML()
			if err != nil {
				return fmt.Errorf("render %q: %w", href, err)
			}
			s.r.warnings.notFound(s.r.log, href, file, tag)
		}
		return nil
	}

	content, err := fsutil.ReadText(file, s.r.enc)
	if err != nil {
		return fmt.Errorf("read stylesheet %q: %w", href, err)
	}
	s.route(&Candidate{
		Kind:       KindLink,
		Element:    elem,
		Content:    content,
		NonEmpty:   hasWord(content),
		SourceFile: file,
		Ref:        href,
	})
	return nil
}

// route sends a resolved candidate to a group, to the drop list, or nowhere.
func (s *scanner) route(c *Candidate) {
	if c.Kind == KindLink || s.r.settings.CollectStyle {
		if !c.NonEmpty && s.r.removeEmpty(c.Kind) {
			s.plan.drops = append(s.plan.drops, c)
			return
		}
		if c.Kind == KindStyle {
			s.styleCount++
			c.Ref = strconv.Itoa(s.styleCount)
		}
		s.r.log.Debug("collecting tag", zap.Stringer("kind", c.Kind), zap.String("ref", c.Ref))
		s.builder.add(c)
		return
	}

	// A style tag that is not collected.
	if c.NonEmpty {
		s.builder.interrupt()
	} else if s.r.settings.RemoveEmptyStyle {
		s.plan.drops = append(s.plan.drops, c)
	}
}

// resolveRef resolves an href against dir.
func resolveRef(dir, ref string) string {
	p := filepath.FromSlash(ref)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}
