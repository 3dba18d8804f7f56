package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csscollect [files or globs...]",
	Short: "Merge the stylesheets of HTML documents",
	Long: `Collect <link rel="stylesheet"> references and <style> blocks of HTML documents
into one stylesheet per run of adjacent tags, written to generated CSS files
or inlined back into the document.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE:          runCollect,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("log-level", "none", "Log level: none|normal|debug")
	rootCmd.PersistentFlags().String("config", ".csscollect.yaml", "Config file path")

	f := rootCmd.Flags()
	f.String("base-dir", "", "Directory used when source and destination coincide (default: document directory)")
	f.String("source-dir", "", "Directory link hrefs are resolved against")
	f.String("dest-dir", "", "Directory generated stylesheets are written to")
	f.String("dest-file", "", "Write the processed document here instead of in place (single input only)")
	f.String("css-file", "style", "Base name of generated stylesheets, without extension")
	f.String("encoding", "utf8", "Encoding of stylesheet files")
	f.Bool("collect-style", true, "Collect the contents of <style> elements")
	f.Bool("include", false, "Inline merged CSS as <style> elements instead of writing files")
	f.Bool("minify", false, "Minify merged CSS")
	f.Int("minify-precision", 0, "Significant digits kept in numbers when minifying (0 = all)")
	f.Bool("remove-empty-ref", true, "Remove links to empty stylesheets")
	f.Bool("remove-empty-style", true, "Remove empty <style> elements")
	f.Bool("remove-source-file", false, "Delete collected stylesheet files")
	f.StringSlice("skip", nil, "Stylesheets to leave alone (path, base name, with or without .css)")
	f.Bool("update-url", false, "Rewrite relative url() references of collected stylesheets")
	f.Bool("warn-not-found", true, "Report links to missing stylesheets")
	f.Bool("strict", false, "Exit 1 when any warning is reported (CI mode)")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Bool("print-tags", true, "Show the markup of tags with warnings")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
