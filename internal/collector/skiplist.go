package collector

import (
	"path"
	"strings"
)

const cssExt = ".css"

// isFileInList reports whether ref names a stylesheet from list. An entry
// matches the reference itself, the reference without ".css", its base name,
// or its base name without ".css". Comparison is exact.
func isFileInList(ref string, list []string) bool {
	if len(list) == 0 {
		return false
	}
	base := path.Base(strings.ReplaceAll(ref, "\\", "/"))
	variants := []string{ref, base}
	if stem, ok := strings.CutSuffix(ref, cssExt); ok {
		variants = append(variants, stem)
	}
	if stem, ok := strings.CutSuffix(base, cssExt); ok {
		variants = append(variants, stem)
	}

	for _, entry := range list {
		for _, v := range variants {
			if entry == v {
				return true
			}
		}
	}
	return false
}
