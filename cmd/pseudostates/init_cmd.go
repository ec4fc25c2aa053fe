package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigFile + " config file",
	Long:  `Create a ` + defaultConfigFile + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# pseudostates configuration
# Docs: https://github.com/yacobolo/pseudostates

verbose: false

# Stylesheets
source: web/styles
include:
  - "**/*.css"
exclude:
  - "vendor/**"
gitignore: true
output-dir: ""            # empty: rewrite in place

# Selector rewriting
states:
  - hover
  - active
  - focus-visible
  - focus-within
  - focus
  - visited
  - link
  - target
excluded-elements:
  - "::-webkit-scrollbar-thumb"
  - "::-webkit-slider-thumb"
class-prefix: pseudo-
max-rules: 1000           # style rules examined per stylesheet

# Shadow DOM
shadow: false
shadow-host: ""           # empty: file base name

# Check settings
strict: false
output-format: issues     # issues | summary | json
print-lines: true
print-linter-name: true
show-replacements: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
