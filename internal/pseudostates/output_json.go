package pseudostates

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the document written by WriteJSON
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary holds issue totals
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats holds rule totals
type JSONStats struct {
	RulesExamined   int `json:"rules_examined"`
	RulesRewritable int `json:"rules_rewritable"`
}

// JSONIssue is one issue, flattened
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`
	Replacement string `json:"replacement,omitempty"` // "a:hover, a.pseudo-hover, .pseudo-hover a"
}

// WriteJSON writes result as indented JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *CheckResult) JSONOutput {
	issues := make([]JSONIssue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		if issue.Replacement != nil {
			ji.Replacement = issue.Replacement.NewText
		}
		issues = append(issues, ji)
	}

	// Always an array, never null
	warnings := append([]string{}, result.Warnings...)

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			RulesExamined:   result.RulesExamined,
			RulesRewritable: result.RulesRewritable,
		},
		Issues:   issues,
		Warnings: warnings,
	}
}
