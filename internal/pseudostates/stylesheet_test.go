package pseudostates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSS = `/* header */
@import url("theme.css");
a:hover { color: red; }
@media (max-width: 600px) {
  a:focus { color: blue; }
}
.btn,
.link { color: green; }
`

func TestParseSheet(t *testing.T) {
	sheet := ParseSheet("sample.css", sampleCSS)
	require.Equal(t, 5, sheet.Len())

	assert.Equal(t, CommentRule, sheet.Rule(0).Kind)
	assert.Equal(t, "/* header */", sheet.Rule(0).Text)

	assert.Equal(t, AtRule, sheet.Rule(1).Kind)
	assert.Equal(t, `@import url("theme.css");`, sheet.Rule(1).Text)

	hover := sheet.Rule(2)
	assert.Equal(t, StyleRule, hover.Kind)
	assert.Equal(t, "a:hover { color: red; }", hover.Text)
	assert.Equal(t, 3, hover.Line)
	assert.Equal(t, 1, hover.Column)

	media := sheet.Rule(3)
	assert.Equal(t, AtRule, media.Kind)
	assert.Equal(t, "@media (max-width: 600px) {\n  a:focus { color: blue; }\n}", media.Text)
	_, ok := media.SelectorText()
	assert.False(t, ok)

	list := sheet.Rule(4)
	selector, ok := list.SelectorText()
	require.True(t, ok)
	assert.Equal(t, ".btn,\n.link", selector)
	assert.Equal(t, 7, list.Line)
}

func TestParseSheet_Recovery(t *testing.T) {
	t.Run("stray closing brace", func(t *testing.T) {
		sheet := ParseSheet("", "} a { color: red; }")
		require.Equal(t, 1, sheet.Len())
		assert.Equal(t, "a { color: red; }", sheet.Rule(0).Text)
	})

	t.Run("unterminated block", func(t *testing.T) {
		sheet := ParseSheet("", "a:hover { color: red;")
		require.Equal(t, 1, sheet.Len())
		assert.Equal(t, "a:hover { color: red;}", sheet.Rule(0).Text)
		assert.Equal(t, "a:hover", sheet.Rule(0).Selector)
	})

	t.Run("nested rules stay in parent", func(t *testing.T) {
		sheet := ParseSheet("", ".card { color: red; &:hover { color: blue; } }")
		require.Equal(t, 1, sheet.Len())
		assert.Equal(t, ".card", sheet.Rule(0).Selector)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, ParseSheet("", "  \n").Len())
	})
}

func TestSheet_Rules(t *testing.T) {
	sheet := ParseSheet("sample.css", sampleCSS)

	rules, err := sheet.Rules()
	require.NoError(t, err)
	require.Len(t, rules, 5)
	assert.Equal(t, "a:hover { color: red; }", rules[2].CSSText())
	assert.Equal(t, "sample.css", sheet.Href())
}

func TestSheet_DeleteInsert(t *testing.T) {
	sheet := ParseSheet("", "a {}\nb {}\nc {}\n")

	require.NoError(t, sheet.DeleteRule(1))
	require.NoError(t, sheet.InsertRule("b:hover {}", 1))
	assert.Equal(t, "a {}\nb:hover {}\nc {}\n", sheet.String())
	assert.Equal(t, 0, sheet.Rule(1).Line)

	require.NoError(t, sheet.InsertRule("d {}", sheet.Len()))
	assert.Equal(t, "d {}", sheet.Rule(3).Text)

	require.Error(t, sheet.DeleteRule(10))
	require.Error(t, sheet.DeleteRule(-1))
	require.Error(t, sheet.InsertRule("e {}", 10))
	require.Error(t, sheet.InsertRule("e {} f {}", 0))
	require.Error(t, sheet.InsertRule("/* only a comment */", 0))
	require.Error(t, sheet.InsertRule("", 0))
	assert.Equal(t, 4, sheet.Len())
}

func TestSheet_SourceLine(t *testing.T) {
	sheet := ParseSheet("", "a {}\r\nb {}\n")
	assert.Equal(t, "a {}", sheet.SourceLine(1))
	assert.Equal(t, "b {}", sheet.SourceLine(2))
	assert.Equal(t, "", sheet.SourceLine(0))
	assert.Equal(t, "", sheet.SourceLine(42))
}
