package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pseudostates",
	Short: "Force CSS pseudo-states with classes for UI previews",
	Long: `Rewrite stylesheets so every rule targeting a pseudo-state such as :hover
or :focus also matches a forcing class (.pseudo-hover, .pseudo-focus).
A preview tool can then show any state by toggling a class.`,
	// Default behavior: run rewrite when no subcommand is given.
	// We must call loadConfig here because PreRunE of rewriteCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRewrite(rewriteCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")

	// Engine settings shared by rewrite and check
	pf.String("source", "web/styles", "Source stylesheet directory")
	pf.StringSlice("include", []string{"**/*.css"}, "Glob patterns for stylesheets to include")
	pf.StringSlice("exclude", nil, "Glob patterns (relative to --source) to skip")
	pf.Bool("gitignore", true, "Skip files matched by ./.gitignore")
	pf.StringSlice("states", nil, "Pseudo-states to rewrite (default: built-in set)")
	pf.StringSlice("excluded-elements", nil, "Pseudo-elements never given a class variant (default: built-in set)")
	pf.String("class-prefix", "pseudo-", "Prefix of the forcing class")
	pf.Int("max-rules", 1000, "Maximum style rules examined per stylesheet")
	pf.Bool("shadow", false, "Treat stylesheets as shadow root sheets (:host forwarding)")
	pf.String("shadow-host", "", "Shadow host name (default: file base name)")

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
