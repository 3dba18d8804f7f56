package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/csscollect"
	"github.com/yacobolo/csscollect/internal/cssmin"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".csscollect.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSCOLLECT_* prefix)
	if err := k.Load(env.Provider("CSSCOLLECT_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. A double underscore
// separates sections and a single one stands for a hyphen:
//
//	CSSCOLLECT_STRICT                    -> strict
//	CSSCOLLECT_LOG_LEVEL                 -> log-level
//	CSSCOLLECT_COLLECT__REMOVE_EMPTY_REF -> collect.remove-empty-ref
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "CSSCOLLECT_"))
	parts := strings.Split(key, "__")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", "-")
	}
	return strings.Join(parts, ".")
}

// buildFileSettings constructs the library's settings from koanf state.
func buildFileSettings() csscollect.FileSettings {
	defaults := csscollect.DefaultSettings()
	settings := csscollect.Settings{
		BaseDir:          getStringWithFallback("base-dir", "collect.base-dir", ""),
		SourceDir:        getStringWithFallback("source-dir", "collect.source-dir", ""),
		DestDir:          getStringWithFallback("dest-dir", "collect.dest-dir", ""),
		CSSFile:          getStringWithFallback("css-file", "collect.css-file", defaults.CSSFile),
		Encoding:         getStringWithFallback("encoding", "collect.encoding", defaults.Encoding),
		CollectStyle:     getBoolWithFallback("collect-style", "collect.collect-style", defaults.CollectStyle),
		Include:          getBoolWithFallback("include", "collect.include", defaults.Include),
		Minify:           getBoolWithFallback("minify", "collect.minify", defaults.Minify),
		RemoveEmptyRef:   getBoolWithFallback("remove-empty-ref", "collect.remove-empty-ref", defaults.RemoveEmptyRef),
		RemoveEmptyStyle: getBoolWithFallback("remove-empty-style", "collect.remove-empty-style", defaults.RemoveEmptyStyle),
		RemoveSourceFile: getBoolWithFallback("remove-source-file", "collect.remove-source-file", defaults.RemoveSourceFile),
		UpdateURL:        getBoolWithFallback("update-url", "collect.update-url", defaults.UpdateURL),
		WarnNotFound:     getBoolWithFallback("warn-not-found", "collect.warn-not-found", defaults.WarnNotFound),
		MinifyOptions: cssmin.Options{
			Precision: getIntWithFallback("minify-precision", "collect.minify-precision", 0),
		},
	}

	// Handle skip list: check flag key first, then config key
	if skip := k.Strings("skip"); len(skip) > 0 {
		settings.SkipCSSFile = skip
	} else if skip := k.Strings("collect.skip"); len(skip) > 0 {
		settings.SkipCSSFile = skip
	}

	return csscollect.FileSettings{
		Settings: settings,
		DestFile: getStringWithFallback("dest-file", "collect.dest-file", ""),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
