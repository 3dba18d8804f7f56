// Package discover expands the CLI's file arguments into the list of HTML
// documents to process.
package discover

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Stats tracks file discovery statistics
type Stats struct {
	Discovered int // Files matched by the patterns
	Selected   int // Files kept after filtering
	Skipped    int // Files dropped by .gitignore
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// Filter decides whether a discovered file is processed.
type Filter func(path string) bool

// GitIgnoreFilter keeps files that the working directory's .gitignore does not match.
// Absolute paths are never filtered: they point outside the project on purpose.
func GitIgnoreFilter(path string) bool {
	if filepath.IsAbs(path) {
		return true
	}
	gi := loadGitIgnore()
	return gi == nil || !gi.MatchesPath(path)
}

// Expand expands glob patterns to regular files, dropping duplicates and
// anything keep rejects. A nil keep accepts every file.
func Expand(patterns []string, keep Filter) ([]string, Stats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := Stats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.Discovered++

			if keep != nil && !keep(match) {
				stats.Skipped++
				continue
			}
			files = append(files, match)
			stats.Selected++
		}
	}

	return files, stats, nil
}
