package pseudostates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(DefaultPseudoStates())
	require.NoError(t, err)
	return m
}

func TestMatcher_Contains(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		name     string
		selector string
		want     bool
	}{
		{"plain state", "a:hover", true},
		{"no state", "a.btn", false},
		{"state name as class", ".hover", false},
		{"escaped colon", `.sm\:hover`, false},
		{"escaped backslash", `.x\\:hover`, true},
		{"escaped backslash then escaped colon", `.x\\\:hover`, false},
		{"two escaped backslashes", `.x\\\\:hover`, true},
		{"escaped then real", `.sm\:hover:focus`, true},
		{"inside negation", "a:not(:focus)", true},
		{"unknown pseudo-class", "li:first-child", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Contains(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "Contains(%q)", tt.selector)
		})
	}
}

func TestMatcher_Extract(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		name       string
		selector   string
		wantPlain  string
		wantStates []PseudoState
	}{
		{"single", "a:hover", "a", []PseudoState{"hover"}},
		{"compound", "a:hover:focus", "a", []PseudoState{"hover", "focus"}},
		{"longest name wins", "button:focus-visible", "button", []PseudoState{"focus-visible"}},
		{"focus-within", "form:focus-within input", "form input", []PseudoState{"focus-within"}},
		{"escaped kept", `.md\:hover:active`, `.md\:hover`, []PseudoState{"active"}},
		{"none", "a", "a", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, states, err := m.Extract(tt.selector)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPlain, plain)
			assert.Equal(t, tt.wantStates, states)
		})
	}
}

func TestMatcher_ReplaceWithClasses(t *testing.T) {
	m := newTestMatcher(t)

	got, err := m.ReplaceWithClasses("a:hover:focus-visible", "pseudo-")
	require.NoError(t, err)
	assert.Equal(t, "a.pseudo-hover.pseudo-focus-visible", got)

	got, err = m.ReplaceWithClasses(`.sm\:hover:hover`, "force-")
	require.NoError(t, err)
	assert.Equal(t, `.sm\:hover.force-hover`, got)
}

func TestNewMatcher(t *testing.T) {
	m, err := NewMatcher([]PseudoState{"focus", ":focus-visible", "focus", " hover "})
	require.NoError(t, err)
	assert.Equal(t, []PseudoState{"focus-visible", "focus", "hover"}, m.States())

	_, err = NewMatcher(nil)
	require.Error(t, err)

	_, err = NewMatcher([]PseudoState{"", ":"})
	require.Error(t, err)
}

func TestNewMatcher_QuotesStateNames(t *testing.T) {
	m, err := NewMatcher([]PseudoState{"nth-child(2n+1)"})
	require.NoError(t, err)

	found, err := m.Contains("li:nth-child(2n+1)")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = m.Contains("li:nth-child(2nn1)")
	require.NoError(t, err)
	assert.False(t, found)
}
