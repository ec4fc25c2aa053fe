package pseudostates

import (
	"fmt"
	"io"
	"sort"
)

// SummaryReporter prints per-file statistics instead of individual issues
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs rule statistics
func (r *SummaryReporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Pseudo-State Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Rules Examined:    %d\n", result.RulesExamined)
	fmt.Fprintf(r.w, "Rules Rewritable:  %d\n", result.RulesRewritable)
	fmt.Fprintf(r.w, "Warnings:          %d\n", result.WarningCount)
	fmt.Fprintf(r.w, "Errors:            %d\n", result.ErrorCount)
}

// PrintFiles lists rewritable rule counts per file, busiest first
func (r *SummaryReporter) PrintFiles(result CheckResult) {
	counts := make(map[string]int)
	for _, issue := range result.Issues {
		if issue.Replacement != nil {
			counts[issue.Pos.Filename]++
		}
	}
	if len(counts) == 0 {
		return
	}

	files := make([]string, 0, len(counts))
	for f := range counts {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		if counts[files[i]] != counts[files[j]] {
			return counts[files[i]] > counts[files[j]]
		}
		return files[i] < files[j]
	})

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleReplacement, "Rewritable Rules by File", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	for _, f := range files {
		fmt.Fprintf(r.w, "%4d  %s\n", counts[f], f)
	}
}

// PrintWarnings shows file-level warnings
func (r *SummaryReporter) PrintWarnings(result CheckResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleWarning, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
