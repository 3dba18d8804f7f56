// Package htmldoc parses markup into a mutable tree, finds elements by tag name,
// edits them in place and serializes the tree back to markup.
//
// Input that carries a doctype or an html, head or body tag is parsed as a
// complete document; wrapper elements the parser had to synthesize are left out
// when rendering. Anything else is parsed as a fragment in a <template> context,
// which keeps table parts such as <tr> and <td> where they are.
package htmldoc

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	documentPattern = regexp.MustCompile(`(?i)<(?:!doctype|(?:html|head|body)[\s>/])`)
	wrapperPattern  = regexp.MustCompile(`(?i)<(html|head|body)[\s>/]`)
)

// Document is a parsed HTML tree.
type Document struct {
	doc  *goquery.Document
	root *html.Node
	// explicit holds the wrapper elements written in the input.
	explicit map[atom.Atom]bool
}

// Parse parses content into a Document.
func Parse(content string) (*Document, error) {
	if documentPattern.MatchString(content) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
		return &Document{doc: doc, root: doc.Nodes[0], explicit: explicitWrappers(content)}, nil
	}

	context := &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, fmt.Errorf("parse html fragment: %w", err)
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return &Document{doc: goquery.NewDocumentFromNode(body), root: body}, nil
}

func explicitWrappers(content string) map[atom.Atom]bool {
	found := make(map[atom.Atom]bool)
	for _, m := range wrapperPattern.FindAllStringSubmatch(content, -1) {
		found[atom.Lookup([]byte(strings.ToLower(m[1])))] = true
	}
	return found
}

// Find returns all elements whose tag name is one of names, in document order.
func (d *Document) Find(names ...string) []*Element {
	var elems []*Element
	d.doc.Find(strings.Join(names, ", ")).Each(func(_ int, sel *goquery.Selection) {
		elems = append(elems, &Element{sel: sel})
	})
	return elems
}

// Render serializes the tree back to markup.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	if err := d.render(&buf, d.root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// render writes n, replacing synthesized wrappers by their children.
func (d *Document) render(buf *bytes.Buffer, n *html.Node) error {
	if !d.synthesized(n) {
		return html.Render(buf, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := d.render(buf, c); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) synthesized(n *html.Node) bool {
	if n == d.root {
		return n.Type == html.DocumentNode || d.explicit == nil
	}
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Html, atom.Head, atom.Body:
		return !d.explicit[n.DataAtom]
	}
	return false
}

// Element is a handle to one element of a Document.
type Element struct {
	sel *goquery.Selection
}

// Name returns the lower-cased tag name.
func (e *Element) Name() string {
	return goquery.NodeName(e.sel)
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// SetAttr sets the named attribute, adding it when missing.
func (e *Element) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

// Text returns the concatenated text of the element's children.
// For raw-text elements such as <style> this is the body verbatim.
func (e *Element) Text() string {
	return e.sel.Text()
}

// OuterHTML renders the element itself.
func (e *Element) OuterHTML() (string, error) {
	return goquery.OuterHtml(e.sel)
}

// ReplaceWith replaces the element with the given markup.
func (e *Element) ReplaceWith(markup string) {
	e.sel.ReplaceWithHtml(markup)
}

// Remove detaches the element from the tree.
func (e *Element) Remove() {
	e.sel.Remove()
}

// StyleMarkup builds a <style> element wrapping css.
func StyleMarkup(css string) string {
	return "<style>\n" + css + "</style>"
}

// LinkMarkup builds a stylesheet <link> element pointing at href.
func LinkMarkup(href string) string {
	return `<link rel="stylesheet" type="text/css" href="` + html.EscapeString(href) + `">`
}
