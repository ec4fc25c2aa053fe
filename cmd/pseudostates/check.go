package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/pseudostates"
)

// errCheckFailed signals a failing check whose issues were already printed
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report rules that would gain forced-state selectors",
	Long: `Scan stylesheets and report every rule the rewrite would change, without
touching any file. Rules that cannot be rewritten are reported as errors.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (pseudostates) suffix on issues")
	f.Bool("show-replacements", false, "Show the rewritten selector list for each rule")
}

// runCheck is shared between `pseudostates check` and `pseudostates rewrite --check`.
func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildConfig()

	result, err := pseudostates.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", false)
	outputFormat := getStringWithFallback("output-format", "")
	format := pseudostates.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := pseudostates.WriteOutput(cmd.OutOrStdout(), result, format, buildReportConfig()); err != nil {
			return err
		}
	}

	// Strict mode: any issue fails the build. Otherwise only errors do.
	if getBoolWithFallback("strict", false) {
		if len(result.Issues) > 0 {
			return errCheckFailed
		}
	} else if result.ErrorCount > 0 {
		return errCheckFailed
	}

	return nil
}
