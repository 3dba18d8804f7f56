package collector

import "github.com/yacobolo/csscollect/internal/htmldoc"

// Kind is the element kind of a scanned tag.
type Kind int

// Tag kinds.
const (
	KindLink Kind = iota
	KindStyle
)

func (k Kind) String() string {
	if k == KindLink {
		return "link"
	}
	return "style"
}

// Candidate is one scanned <link> or <style> element that carries CSS.
type Candidate struct {
	Kind       Kind
	Element    *htmldoc.Element // owned by the document
	Content    string           // file contents for links, body text for styles
	NonEmpty   bool             // Content has at least one word character
	SourceFile string           // absolute path, links only
	Ref        string           // href for links, style sequence number for styles
}

// Group is a run of candidates merged into one output.
// The first candidate is the anchor: its element receives the merged result.
type Group struct {
	Tags []*Candidate
}

// Anchor returns the candidate whose position receives the merged output.
func (g Group) Anchor() *Candidate {
	return g.Tags[0]
}

// Warning describes a stylesheet reference whose file could not be found.
type Warning struct {
	Message string `json:"message"`
	Ref     string `json:"ref"`  // href as written in the document
	File    string `json:"file"` // resolved absolute path
	Tag     string `json:"tag"`  // markup of the original element
}

func (w Warning) String() string {
	return w.Message
}

// Result is the outcome of one collection run.
type Result struct {
	// Errors is reserved for structured errors and is nil in normal operation;
	// hard failures are returned as the error value instead.
	Errors   []error   `json:"error"`
	Content  string    `json:"result"`
	Warnings []Warning `json:"warning"`
	// File is the absolute path of the written document (CollectFile only).
	File string `json:"file,omitempty"`
	// Written reports whether CollectFile saved the processed document.
	Written bool `json:"written,omitempty"`
}

// Changed reports whether the processed content differs from original.
func (r *Result) Changed(original string) bool {
	return r.Content != original
}
