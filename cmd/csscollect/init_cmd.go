package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .csscollect.yaml config file",
	Long:  `Create a .csscollect.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".csscollect.yaml"); err == nil && !force {
			return fmt.Errorf(".csscollect.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".csscollect.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .csscollect.yaml")
		return nil
	},
}

const defaultConfig = `# csscollect configuration
# Docs: https://github.com/yacobolo/csscollect

# Documents to process when no arguments are given
files:
  - "public/**/*.html"

strict: false
log-level: none          # none | normal | debug

collect:
  # base-dir: public     # default: directory of each document
  # source-dir: public
  # dest-dir: public
  css-file: style
  encoding: utf8
  collect-style: true
  include: false
  minify: false
  minify-precision: 0
  remove-empty-ref: true
  remove-empty-style: true
  remove-source-file: false
  update-url: false
  warn-not-found: true
  skip: []

output:
  format: issues         # issues | json
  print-tags: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
