package main

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".csscollect.yaml")
	configContent := `
strict: true
files:
  - "public/**/*.html"

collect:
  css-file: all
  include: true
  minify-precision: 4
  skip:
    - vendor.css
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("strict"))
	assert.Equal(t, []string{"public/**/*.html"}, k.Strings("files"))
	assert.Equal(t, "all", k.String("collect.css-file"))
	assert.True(t, k.Bool("collect.include"))
	assert.Equal(t, 4, k.Int("collect.minify-precision"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.csscollect.yaml"))

	fs := buildFileSettings()
	assert.Equal(t, "style", fs.CSSFile)
	assert.Equal(t, "utf8", fs.Encoding)
	assert.Empty(t, fs.DestFile)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".csscollect.yaml")
	configContent := `
collect:
  include: false
strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CSSCOLLECT_COLLECT__INCLUDE", "true")
	t.Setenv("CSSCOLLECT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("collect.include"))
	assert.True(t, k.Bool("strict"))
}

func TestEnvVarHyphenatedKeys(t *testing.T) {
	resetKoanf()

	t.Setenv("CSSCOLLECT_LOG_LEVEL", "debug")
	t.Setenv("CSSCOLLECT_COLLECT__CSS_FILE", "bundle")
	t.Setenv("CSSCOLLECT_COLLECT__REMOVE_EMPTY_REF", "false")
	t.Setenv("CSSCOLLECT_OUTPUT__PRINT_TAGS", "false")

	require.NoError(t, loadConfigFromPath("/nonexistent/.csscollect.yaml"))

	assert.Equal(t, "debug", k.String("log-level"))
	assert.False(t, getBoolWithFallback("print-tags", "output.print-tags", true))

	fs := buildFileSettings()
	assert.Equal(t, "bundle", fs.CSSFile)
	assert.False(t, fs.RemoveEmptyRef)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"CSSCOLLECT_STRICT":                    "strict",
		"CSSCOLLECT_LOG_LEVEL":                 "log-level",
		"CSSCOLLECT_COLLECT__INCLUDE":          "collect.include",
		"CSSCOLLECT_COLLECT__MINIFY_PRECISION": "collect.minify-precision",
		"CSSCOLLECT_OUTPUT__FORMAT":            "output.format",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestBuildFileSettings_Defaults(t *testing.T) {
	resetKoanf()

	fs := buildFileSettings()
	assert.Empty(t, fs.BaseDir)
	assert.Empty(t, fs.SourceDir)
	assert.Empty(t, fs.DestDir)
	assert.Equal(t, "style", fs.CSSFile)
	assert.True(t, fs.CollectStyle)
	assert.False(t, fs.Include)
	assert.False(t, fs.Minify)
	assert.True(t, fs.RemoveEmptyRef)
	assert.True(t, fs.RemoveEmptyStyle)
	assert.False(t, fs.RemoveSourceFile)
	assert.False(t, fs.UpdateURL)
	assert.True(t, fs.WarnNotFound)
	assert.Nil(t, fs.SkipCSSFile)
	assert.Equal(t, 0, fs.MinifyOptions.Precision)
}

func TestBuildFileSettings_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".csscollect.yaml")
	configContent := `
collect:
  source-dir: src
  dest-dir: dist
  dest-file: dist/index.html
  css-file: bundle
  encoding: latin1
  collect-style: false
  include: true
  minify: true
  minify-precision: 3
  remove-empty-ref: false
  remove-source-file: true
  update-url: true
  warn-not-found: false
  skip:
    - print
    - vendor/reset.css
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	fs := buildFileSettings()
	assert.Equal(t, "src", fs.SourceDir)
	assert.Equal(t, "dist", fs.DestDir)
	assert.Equal(t, "dist/index.html", fs.DestFile)
	assert.Equal(t, "bundle", fs.CSSFile)
	assert.Equal(t, "latin1", fs.Encoding)
	assert.False(t, fs.CollectStyle)
	assert.True(t, fs.Include)
	assert.True(t, fs.Minify)
	assert.Equal(t, 3, fs.MinifyOptions.Precision)
	assert.False(t, fs.RemoveEmptyRef)
	assert.True(t, fs.RemoveEmptyStyle)
	assert.True(t, fs.RemoveSourceFile)
	assert.True(t, fs.UpdateURL)
	assert.False(t, fs.WarnNotFound)
	assert.Equal(t, []string{"print", "vendor/reset.css"}, fs.SkipCSSFile)
}

func TestFlagKeyWinsOverConfigKey(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("collect.css-file", "from-file"))
	require.NoError(t, k.Set("css-file", "from-flag"))
	require.NoError(t, k.Set("collect.include", false))
	require.NoError(t, k.Set("include", true))

	fs := buildFileSettings()
	assert.Equal(t, "from-flag", fs.CSSFile)
	assert.True(t, fs.Include)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".csscollect.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "files:")
	assert.Contains(t, string(data), "collect:")
	assert.Contains(t, string(data), "output:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	// Create existing file
	require.NoError(t, os.WriteFile(".csscollect.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	// Create existing file
	require.NoError(t, os.WriteFile(".csscollect.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".csscollect.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "css-file: style")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestCompletionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"completion", "bash"})
	require.NoError(t, cmd.Execute())

	cmd.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, cmd.Execute())
}

func TestResolveVersion(t *testing.T) {
	installed := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}}, true
	}
	local := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	none := func() (*debug.BuildInfo, bool) { return nil, false }

	assert.Equal(t, "1.2.0", resolveVersion("1.2.0", installed))
	assert.Equal(t, "v0.3.1", resolveVersion("dev", installed))
	assert.Equal(t, "dev", resolveVersion("dev", local))
	assert.Equal(t, "dev", resolveVersion("dev", none))
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
