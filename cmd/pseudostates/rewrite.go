package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/pseudostates"
)

var rewriteCmd = &cobra.Command{
	Use:     "rewrite",
	Aliases: []string{"rw"},
	Short:   "Add forced-state selectors to stylesheets",
	Long: `Rewrite every rule that targets a pseudo-state so it also matches a forcing
class on the element or on any ancestor. Files are rewritten in place unless
--output-dir is given.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRewrite,
}

func init() {
	f := rewriteCmd.Flags()
	f.String("output-dir", "", "Write rewritten stylesheets here instead of in place")
	f.Bool("check", false, "Run check after rewriting")
}

func runRewrite(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	result, err := pseudostates.Rewrite(config)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", false)
	out := cmd.OutOrStdout()

	if !quiet {
		dest := config.OutputDir
		if dest == "" {
			dest = config.SourceDir + " (in place)"
		}
		fmt.Fprintf(out, "Rewrote stylesheets in %s\n", dest)
		fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Files rewritten: %d\n", result.FilesRewritten)
		fmt.Fprintf(out, "  Rules rewritten: %d\n", result.RulesRewritten)

		for _, host := range result.ShadowHosts {
			fmt.Fprintf(out, "  Shadow host: %s\n", host)
		}
		for _, f := range result.CappedFiles {
			fmt.Fprintf(out, "  Capped: %s\n", f)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  Warning: %s\n", w)
		}
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d stylesheet(s) could not be rewritten", len(result.Errors))
	}

	// Run check after rewrite if --check flag set
	if check, _ := cmd.Flags().GetBool("check"); check {
		return runCheck(cmd, nil)
	}

	return nil
}
