package pseudostates

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  a:hover { color: red; }",
			column:     3,
			want:       "  ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t  .btn:focus {",
			column:     5,
			want:       "\t\t  ^",
		},
		{
			name:       "start of line",
			sourceLine: "a:hover {}",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 for inserted rules",
			sourceLine: "a:hover {}",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "a {",
			column:     100,
			want:       "   ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func sampleResult(t *testing.T) *CheckResult {
	t.Helper()

	rw, err := NewRewriter(RewriterConfig{})
	require.NoError(t, err)

	sheet := ParseSheet("web/styles/button.css", ".btn { color: black; }\n\n  .btn:hover { color: red; }\n")
	result := &CheckResult{FilesScanned: 1}
	InspectSheet(rw, sheet, false, 0, result)
	return result
}

func TestReporter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportConfig{
		PrintIssuedLines: true,
		PrintLinterName:  true,
		ShowReplacements: true,
	})
	reporter.useColors = false

	result := sampleResult(t)
	reporter.PrintIssues(result.Issues)
	reporter.PrintSummary(*result)

	out := buf.String()
	assert.Contains(t, out, `web/styles/button.css:3:3: selector ".btn:hover" targets pseudo-states (hover) (pseudostates)`)
	assert.Contains(t, out, "\t  .btn:hover { color: red; }\n\t  ^\n")
	assert.Contains(t, out, "\t=> .btn:hover, .btn.pseudo-hover, .pseudo-hover .btn\n")
	assert.Contains(t, out, "* pseudostates: 1 rewritable rule in 1 file")
	assert.Contains(t, out, "Hint: Run `pseudostates rewrite`")
}

func TestReporter_NoLinterName(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportConfig{})
	reporter.useColors = false

	reporter.PrintIssues(sampleResult(t).Issues)

	out := buf.String()
	assert.NotContains(t, out, "(pseudostates)")
	assert.NotContains(t, out, "=>")
	assert.NotContains(t, out, "^")
}

func TestSummaryReporter(t *testing.T) {
	result := sampleResult(t)
	result.Warnings = []string{"read web/styles/broken.css: permission denied"}

	var buf bytes.Buffer
	summary := NewSummaryReporter(&buf, false)
	summary.PrintStatistics(*result)
	summary.PrintFiles(*result)
	summary.PrintWarnings(*result)

	out := buf.String()
	assert.Contains(t, out, "Rules Examined:    2")
	assert.Contains(t, out, "Rules Rewritable:  1")
	assert.Contains(t, out, "   1  web/styles/button.css")
	assert.Contains(t, out, "• read web/styles/broken.css: permission denied")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult(t)))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, 1, out.Summary.TotalIssues)
	assert.Equal(t, 0, out.Summary.Errors)
	assert.Equal(t, 2, out.Stats.RulesExamined)
	assert.Equal(t, []string{}, out.Warnings)

	require.Len(t, out.Issues, 1)
	assert.Equal(t, "web/styles/button.css", out.Issues[0].File)
	assert.Equal(t, 3, out.Issues[0].Line)
	assert.Equal(t, 3, out.Issues[0].Column)
	assert.Equal(t, LinterName, out.Issues[0].Linter)
	assert.Equal(t, "  .btn:hover { color: red; }", out.Issues[0].Source)
}
