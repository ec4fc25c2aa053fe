package pseudostates

import (
	"fmt"
	"io"

	engine "github.com/yacobolo/pseudostates/internal/pseudostates"
)

// DetermineOutputFormat maps the --output-format flag to an OutputFormat.
// Unknown or empty values fall back to the default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet callers print nothing, the format is irrelevant
	if quiet {
		return DetermineDefaultOutputFormat()
	}

	switch f := OutputFormat(formatFlag); f {
	case OutputIssues, OutputSummary, OutputJSON:
		return f
	}
	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns OutputIssues, one line per finding
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes result to w in the given format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputSummary:
		summary := engine.NewSummaryReporter(w, engine.ShouldUseColors(config))
		summary.PrintStatistics(*result)
		summary.PrintFiles(*result)
		summary.PrintWarnings(*result)
	case OutputJSON:
		if err := engine.WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	default:
		reporter := engine.NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}
