package pseudostates

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// unescapedColon matches a colon preceded by an even number (including zero)
// of backslashes. An odd count means the colon itself is escaped.
//
//	:hover      match
//	\:hover     skip
//	\\:hover    match
//	\\\:hover   skip
const unescapedColon = `(?<=(?<!\\)(?:\\\\)*):`

// matchTimeout bounds a single match against one selector
const matchTimeout = 250 * time.Millisecond

// Matcher finds unescaped pseudo-state tokens in selectors
type Matcher struct {
	states []PseudoState
	re     *regexp2.Regexp
}

// NewMatcher compiles a matcher for the given pseudo-state names
func NewMatcher(states []PseudoState) (*Matcher, error) {
	if len(states) == 0 {
		return nil, errors.New("no pseudo-states configured")
	}

	// Deduplicate, then longest first so "focus-visible" wins over "focus"
	seen := make(map[PseudoState]bool, len(states))
	names := make([]PseudoState, 0, len(states))
	for _, s := range states {
		s = strings.TrimPrefix(strings.TrimSpace(s), ":")
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		names = append(names, s)
	}
	if len(names) == 0 {
		return nil, errors.New("no pseudo-states configured")
	}
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	alternatives := make([]string, len(names))
	for i, name := range names {
		alternatives[i] = regexp2.Escape(name)
	}

	expr := unescapedColon + "(" + strings.Join(alternatives, "|") + ")"
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile pseudo-state pattern: %w", err)
	}
	re.MatchTimeout = matchTimeout

	return &Matcher{states: names, re: re}, nil
}

// States returns the recognized state names, longest first
func (m *Matcher) States() []PseudoState {
	return append([]PseudoState(nil), m.states...)
}

// Contains reports whether selector has at least one unescaped pseudo-state
func (m *Matcher) Contains(selector string) (bool, error) {
	ok, err := m.re.MatchString(selector)
	if err != nil {
		return false, fmt.Errorf("match %q: %w", selector, err)
	}
	return ok, nil
}

// Extract returns every unescaped pseudo-state in selector, left to right,
// along with the selector with all of them removed.
func (m *Matcher) Extract(selector string) (string, []PseudoState, error) {
	var states []PseudoState
	plain, err := m.re.ReplaceFunc(selector, func(match regexp2.Match) string {
		states = append(states, match.GroupByNumber(1).String())
		return ""
	}, -1, -1)
	if err != nil {
		return "", nil, fmt.Errorf("extract states from %q: %w", selector, err)
	}
	return plain, states, nil
}

// ReplaceWithClasses swaps every unescaped ":<state>" for ".<prefix><state>"
func (m *Matcher) ReplaceWithClasses(selector, prefix string) (string, error) {
	out, err := m.re.ReplaceFunc(selector, func(match regexp2.Match) string {
		return "." + prefix + match.GroupByNumber(1).String()
	}, -1, -1)
	if err != nil {
		return "", fmt.Errorf("replace states in %q: %w", selector, err)
	}
	return out, nil
}
