// Package cssurl rewrites url(...) references inside CSS text.
//
// The stylesheet is walked with the tdewolff CSS lexer and written back token by
// token, so everything except the rewritten url() tokens is preserved byte for byte.
package cssurl

import (
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// ReplaceFunc is called for every url() occurrence with the unquoted URL.
// Returning ok=false keeps the occurrence unchanged.
type ReplaceFunc func(url string) (replacement string, ok bool)

// Rewrite returns content with every url() token passed through fn.
func Rewrite(content string, fn ReplaceFunc) string {
	lexer := css.NewLexer(parse.NewInputString(content))

	var sb strings.Builder
	sb.Grow(len(content))
	offset := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		offset += len(text)

		if tt != css.URLToken {
			sb.Write(text)
			continue
		}
		quote, url := splitToken(string(text))
		if replacement, ok := fn(url); ok {
			sb.WriteString("url(" + quote + replacement + quote + ")")
		} else {
			sb.Write(text)
		}
	}
	// The lexer only stops early on malformed input; keep whatever it did not consume.
	if lexer.Err() != io.EOF && offset < len(content) {
		sb.WriteString(content[offset:])
	}
	return sb.String()
}

// splitToken unwraps `url( "x" )` into its quote character and URL.
func splitToken(token string) (quote, url string) {
	i := strings.IndexByte(token, '(')
	if i < 0 {
		return "", token
	}
	inner := token[i+1:]
	inner = strings.TrimSuffix(inner, ")")
	inner = strings.TrimSpace(inner)
	if n := len(inner); n >= 2 && (inner[0] == '"' || inner[0] == '\'') && inner[n-1] == inner[0] {
		return inner[:1], inner[1 : n-1]
	}
	return "", inner
}

// IsRelative reports whether url is a relative path reference: not absolute,
// not scheme-prefixed (http:, data:, ...), not empty and not a bare fragment.
func IsRelative(url string) bool {
	if url == "" || strings.HasPrefix(url, "/") || strings.HasPrefix(url, "#") {
		return false
	}
	return !hasScheme(url)
}

// hasScheme reports whether url starts with a URI scheme such as "data:".
func hasScheme(url string) bool {
	return schemePattern.MatchString(url)
}
