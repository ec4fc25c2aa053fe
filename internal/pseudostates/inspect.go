package pseudostates

import (
	"fmt"
	"strings"
)

// InspectSheet records into result what PatchSheet would do to sheet,
// without mutating it. maxRules <= 0 means DefaultMaxRules.
func InspectSheet(rw *Rewriter, sheet *Sheet, shadow bool, maxRules int, result *CheckResult) {
	if maxRules <= 0 {
		maxRules = DefaultMaxRules
	}

	examined := 0
	for i := 0; i < sheet.Len(); i++ {
		rule := sheet.Rule(i)
		selector, ok := rule.SelectorText()
		if !ok {
			continue
		}

		if examined == maxRules {
			remaining := countStyleRules(sheet, i)
			result.Add(Issue{
				FromLinter: LinterName,
				Text:       fmt.Sprintf(IssueRuleCapExceeded, maxRules, remaining),
				Severity:   SeverityWarning,
				Pos:        issuePos(sheet, rule),
			})
			break
		}
		examined++
		result.RulesExamined++

		issues, rewritable := inspectRule(rw, sheet, rule, selector, shadow)
		if rewritable {
			result.RulesRewritable++
		}
		result.Add(issues...)
	}
}

// inspectRule returns the issues for a single style rule and whether the
// rule would be rewritten.
func inspectRule(rw *Rewriter, sheet *Sheet, rule *SheetRule, selector string, shadow bool) ([]Issue, bool) {
	found, err := rw.Matcher().Contains(selector)
	if err != nil {
		return []Issue{failedIssue(sheet, rule, selector, err)}, false
	}
	if !found {
		return nil, false
	}

	rewritten, err := rw.RewriteSelectorList(selector, shadow)
	if err != nil {
		return []Issue{failedIssue(sheet, rule, selector, err)}, false
	}
	if rewritten == selector {
		return nil, false
	}

	var issues []Issue
	var names []string
	for _, part := range SplitSelectors(selector) {
		if strings.Contains(part, rw.marker()) {
			continue
		}
		_, states, err := rw.Matcher().Extract(part)
		if err != nil {
			return []Issue{failedIssue(sheet, rule, selector, err)}, false
		}
		for _, s := range states {
			if !contains(names, s) {
				names = append(names, s)
			}
		}
		if rw.targetsExcludedPseudoElement(part, states) {
			issues = append(issues, Issue{
				FromLinter:  LinterName,
				Text:        fmt.Sprintf(IssueExcludedElement, part),
				Severity:    SeverityWarning,
				SourceLines: sourceLines(sheet, rule),
				Pos:         issuePos(sheet, rule),
			})
		}
	}

	rewritable := Issue{
		FromLinter:  LinterName,
		Text:        fmt.Sprintf(IssueRewritable, selector, strings.Join(names, ", ")),
		Severity:    SeverityInfo,
		SourceLines: sourceLines(sheet, rule),
		Pos:         issuePos(sheet, rule),
		Replacement: &Replacement{
			NewText:      rewritten,
			InlineLength: len(selector),
		},
	}

	return append([]Issue{rewritable}, issues...), true
}

func failedIssue(sheet *Sheet, rule *SheetRule, selector string, err error) Issue {
	return Issue{
		FromLinter:  LinterName,
		Text:        fmt.Sprintf(IssueRewriteFailed, selector, err),
		Severity:    SeverityError,
		SourceLines: sourceLines(sheet, rule),
		Pos:         issuePos(sheet, rule),
	}
}

// countStyleRules counts style rules from index from to the end of sheet
func countStyleRules(sheet *Sheet, from int) int {
	n := 0
	for i := from; i < sheet.Len(); i++ {
		if sheet.Rule(i).Kind == StyleRule {
			n++
		}
	}
	return n
}

func issuePos(sheet *Sheet, rule *SheetRule) IssuePos {
	return IssuePos{
		Filename: sheet.Href(),
		Line:     rule.Line,
		Column:   rule.Column,
	}
}

// sourceLines returns the source line the rule starts on
func sourceLines(sheet *Sheet, rule *SheetRule) []string {
	if line := sheet.SourceLine(rule.Line); line != "" {
		return []string{line}
	}
	first, _, _ := strings.Cut(rule.Text, "\n")
	return []string{first}
}
