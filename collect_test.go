package csscollect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/csscollect"
)

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte(".a{top:0}"), 0o644))

	settings := csscollect.DefaultSettings()
	settings.BaseDir = dir
	settings.Include = true

	result, err := csscollect.Collect(`<link rel="stylesheet" href="a.css"><link rel="stylesheet" href="gone.css">`, settings)
	require.NoError(t, err)
	assert.Equal(t, "<style>\n/*----- a.css -----*/\n\n.a{top:0}\n\n</style>", result.Content)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "gone.css", result.Warnings[0].Ref)
}

func TestCollectFile(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<style>.a{top:0}</style>`), 0o644))

	result, err := csscollect.CollectFile(page, csscollect.FileSettings{Settings: csscollect.DefaultSettings()})
	require.NoError(t, err)
	assert.Equal(t, page, result.File)

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, `<link rel="stylesheet" type="text/css" href="style.css"/>`, string(data))
}
