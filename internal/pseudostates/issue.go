package pseudostates

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "pseudostates"
	Text        string       `json:"Text"`        // "selector \"a:hover\" targets pseudo-states"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Rewritten selector list, if any
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/button.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 1 (1-based, start of the rule)
}

// Replacement carries the selector list the rewrite would produce
type Replacement struct {
	NewText      string // "a:hover, a.pseudo-hover, .pseudo-hover a"
	InlineLength int    // Length of the selector text being replaced
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported as the FromLinter of every issue
const LinterName = "pseudostates"

// Issue message formats
const (
	IssueRewritable      = "selector %q targets pseudo-states (%s)"
	IssueExcludedElement = "selector %q applies a pseudo-state to an excluded pseudo-element, no class variant generated"
	IssueRuleCapExceeded = "rule limit of %d reached, %d style rules left unrewritten"
	IssueRewriteFailed   = "selector %q could not be rewritten: %v"
)

// CheckResult summarizes a dry run over one or more stylesheets
type CheckResult struct {
	Issues          []Issue
	FilesScanned    int
	RulesExamined   int // Style rules looked at
	RulesRewritable int // Style rules that would be rewritten
	ErrorCount      int
	WarningCount    int
	Warnings        []string // File-level problems (unreadable files, ...)
}

// Add appends issues and updates the severity counters
func (r *CheckResult) Add(issues ...Issue) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		}
	}
	r.Issues = append(r.Issues, issues...)
}
