package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/csscollect"
	"github.com/yacobolo/csscollect/internal/discover"
	"github.com/yacobolo/csscollect/internal/report"
)

// errWarnings signals a strict-mode failure; the report already explains it.
var errWarnings = errors.New("warnings reported in strict mode")

func runCollect(_ *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		patterns = k.Strings("files")
	}
	if len(patterns) == 0 {
		return fmt.Errorf("no input files: pass files or globs, or set files in the config file")
	}

	files, stats, err := discover.Expand(patterns, discover.GitIgnoreFilter)
	if err != nil {
		return fmt.Errorf("expanding patterns: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
	log, err := newLogger(getStringWithFallback("log-level", "log-level", "none"), useColors)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("discovered input",
		zap.Int("discovered", stats.Discovered),
		zap.Int("selected", stats.Selected),
		zap.Int("skipped", stats.Skipped))

	settings := buildFileSettings()
	settings.Logger = log
	if settings.DestFile != "" && len(files) > 1 {
		return fmt.Errorf("--dest-file needs exactly one input file, got %d", len(files))
	}

	results, procErr := processFiles(files, settings, log)

	if !quiet {
		format := report.DetermineOutputFormat(getStringWithFallback("output-format", "output.format", "issues"))
		report.WriteOutput(os.Stdout, results, format, report.Config{
			UseColors:     useColors,
			PrintTags:     getBoolWithFallback("print-tags", "output.print-tags", true),
			PrintToolName: true,
		})
	}

	if procErr != nil {
		return procErr
	}
	if getBoolWithFallback("strict", "strict", false) && countWarnings(results) > 0 {
		return errWarnings
	}
	return nil
}

// processFiles collects every file, continuing past failures. The returned
// error combines all per-file failures.
func processFiles(files []string, settings csscollect.FileSettings, log *zap.Logger) ([]report.FileResult, error) {
	var errs error
	results := make([]report.FileResult, 0, len(files))
	for _, file := range files {
		res, err := csscollect.CollectFile(file, settings)
		if err != nil {
			log.Error("collecting failed", zap.String("file", file), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			results = append(results, report.FileResult{File: file, Err: err})
			continue
		}
		log.Info("collected", zap.String("file", file), zap.Bool("written", res.Written), zap.Int("warnings", len(res.Warnings)))
		results = append(results, report.FileResult{
			File:     file,
			Changed:  res.Written,
			Warnings: res.Warnings,
		})
	}
	return results, errs
}

func countWarnings(results []report.FileResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Warnings)
	}
	return n
}
