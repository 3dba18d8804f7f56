package discover

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<p></p>"), 0o644))
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "index.html"))
	touch(t, filepath.Join(dir, "blog", "post.html"))
	touch(t, filepath.Join(dir, "blog", "draft", "wip.html"))
	touch(t, filepath.Join(dir, "style.css"))

	tests := []struct {
		name     string
		patterns []string
		keep     Filter
		want     []string
		stats    Stats
	}{
		{
			name:     "recursive glob",
			patterns: []string{filepath.Join(dir, "**", "*.html")},
			want:     []string{"blog/draft/wip.html", "blog/post.html", "index.html"},
			stats:    Stats{Discovered: 3, Selected: 3},
		},
		{
			name:     "overlapping patterns are deduplicated",
			patterns: []string{filepath.Join(dir, "*.html"), filepath.Join(dir, "**", "*.html")},
			want:     []string{"index.html", "blog/draft/wip.html", "blog/post.html"},
			stats:    Stats{Discovered: 3, Selected: 3},
		},
		{
			name:     "directories are ignored",
			patterns: []string{filepath.Join(dir, "*")},
			want:     []string{"index.html", "style.css"},
			stats:    Stats{Discovered: 2, Selected: 2},
		},
		{
			name:     "filter",
			patterns: []string{filepath.Join(dir, "**", "*.html")},
			keep:     func(p string) bool { return !strings.Contains(p, "draft") },
			want:     []string{"blog/post.html", "index.html"},
			stats:    Stats{Discovered: 3, Selected: 2, Skipped: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, stats, err := Expand(tt.patterns, tt.keep)
			require.NoError(t, err)
			var rel []string
			for _, f := range files {
				r, err := filepath.Rel(dir, f)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}
			assert.ElementsMatch(t, tt.want, rel)
			assert.Equal(t, tt.stats, stats)
		})
	}
}

func TestGitIgnoreFilterKeepsAbsolutePaths(t *testing.T) {
	assert.True(t, GitIgnoreFilter(filepath.Join(t.TempDir(), "x.html")))
}
