package pseudostates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectSheet(t *testing.T) {
	rw := newTestRewriter(t, RewriterConfig{})
	sheet := ParseSheet("web/styles/form.css", `.field { margin: 0; }
input:focus, input::-webkit-slider-thumb:hover { outline: none; }
.done:hover, .done.pseudo-hover, .pseudo-hover .done { color: gray; }
@media print { a:hover { color: black; } }
`)

	result := &CheckResult{}
	InspectSheet(rw, sheet, false, 0, result)

	assert.Equal(t, 3, result.RulesExamined)
	assert.Equal(t, 1, result.RulesRewritable)
	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	require.Len(t, result.Issues, 2)

	rewritable := result.Issues[0]
	assert.Equal(t, SeverityInfo, rewritable.Severity)
	assert.Equal(t, `selector "input:focus, input::-webkit-slider-thumb:hover" targets pseudo-states (focus, hover)`, rewritable.Text)
	assert.Equal(t, IssuePos{Filename: "web/styles/form.css", Line: 2, Column: 1}, rewritable.Pos)
	require.NotNil(t, rewritable.Replacement)
	assert.Equal(t,
		"input:focus, input.pseudo-focus, .pseudo-focus input, input::-webkit-slider-thumb:hover, .pseudo-hover input::-webkit-slider-thumb",
		rewritable.Replacement.NewText)

	excluded := result.Issues[1]
	assert.Equal(t, SeverityWarning, excluded.Severity)
	assert.Contains(t, excluded.Text, `"input::-webkit-slider-thumb:hover"`)
}

func TestInspectSheet_Shadow(t *testing.T) {
	rw := newTestRewriter(t, RewriterConfig{})
	sheet := ParseSheet("my-button.css", "button:active { color: red; }")

	result := &CheckResult{}
	InspectSheet(rw, sheet, true, 0, result)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "button:active, button.pseudo-active, :host(.pseudo-active) button", result.Issues[0].Replacement.NewText)
}

func TestInspectSheet_RuleCap(t *testing.T) {
	rw := newTestRewriter(t, RewriterConfig{})
	sheet := ParseSheet("big.css", generatedCSS(5))

	result := &CheckResult{}
	InspectSheet(rw, sheet, false, 3, result)

	assert.Equal(t, 3, result.RulesExamined)
	assert.Equal(t, 3, result.RulesRewritable)
	assert.Equal(t, 1, result.WarningCount)

	last := result.Issues[len(result.Issues)-1]
	assert.Equal(t, fmt.Sprintf(IssueRuleCapExceeded, 3, 2), last.Text)
	assert.Equal(t, 4, last.Pos.Line)
}

func TestInspectSheet_DoesNotMutate(t *testing.T) {
	rw := newTestRewriter(t, RewriterConfig{})
	css := "a:hover { color: red; }\n"
	sheet := ParseSheet("a.css", css)

	InspectSheet(rw, sheet, false, 0, &CheckResult{})
	assert.Equal(t, css, sheet.String())
}
