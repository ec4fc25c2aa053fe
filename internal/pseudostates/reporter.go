package pseudostates

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter prints check issues one per line, golangci-lint style:
//
//	web/styles/button.css:3:1: selector "a:hover" targets pseudo-states (hover) (pseudostates)
//		a:hover { color: red; }
//		^
type Reporter struct {
	w                io.Writer
	useColors        bool
	printLines       bool
	printLinterName  bool
	showReplacements bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:                w,
		useColors:        ShouldUseColors(config),
		printLines:       config.PrintIssuedLines,
		printLinterName:  config.PrintLinterName,
		showReplacements: config.ShowReplacements,
	}
}

// ShouldUseColors reports whether output should be colored: forced by
// config or FORCE_COLOR, on in GitHub Actions, otherwise only on a terminal.
func ShouldUseColors(config ReportConfig) bool {
	switch {
	case config.UseColors, os.Getenv("FORCE_COLOR") != "":
		return true
	case os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// PrintIssues sorts issues by position and prints them
func (r *Reporter) PrintIssues(issues []Issue) {
	sortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// sortIssues orders issues by file, line and column. Issues on the same
// rule keep their relative order.
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	text := issue.Text
	if issue.Severity == SeverityError {
		text = RenderStyle(StyleError, text, r.useColors)
	}

	suffix := ""
	if r.printLinterName {
		suffix = " (" + issue.FromLinter + ")"
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleLocation, location, r.useColors),
		text,
		RenderStyle(StyleMuted, suffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleWarning, caret, r.useColors))
	}

	if r.showReplacements && issue.Replacement != nil {
		fmt.Fprintf(r.w, "\t%s %s\n",
			RenderStyle(StyleReplacement, "=>", r.useColors),
			issue.Replacement.NewText)
	}
}

// buildCaretIndicator points at column (1-based) of sourceLine. Tabs in the
// prefix are kept so the caret lines up under tab-indented CSS.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	n := column - 1
	if n < 0 {
		n = 0
	}
	if n > len(sourceLine) {
		n = len(sourceLine)
	}

	pad := strings.Map(func(c rune) rune {
		if c == '\t' {
			return '\t'
		}
		return ' '
	}, sourceLine[:n])

	return pad + "^"
}

// PrintSummary prints issue totals and a hint when rules can be rewritten
func (r *Reporter) PrintSummary(result CheckResult) {
	total := len(result.Issues)

	fmt.Fprintln(r.w, "")
	if result.ErrorCount > 0 && result.WarningCount > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}

	fmt.Fprintf(r.w, "* %s: %s in %s\n",
		LinterName,
		pluralizeCount(result.RulesRewritable, "rewritable rule", "rewritable rules"),
		pluralizeCount(result.FilesScanned, "file", "files"))

	if result.RulesRewritable > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleMuted, "Hint: Run `pseudostates rewrite` to add forced-state selectors", r.useColors))
	}
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
