package pseudostates

import (
	"fmt"
	"strings"
)

// emptyNegation is what ":not(:hover)" collapses to once states are stripped
const emptyNegation = ":not()"

// Rewriter derives class-based alternatives for selectors that target
// pseudo-states.
type Rewriter struct {
	matcher  *Matcher
	excluded []string
	prefix   string
}

// NewRewriter builds a Rewriter, filling unset config fields with defaults
func NewRewriter(cfg RewriterConfig) (*Rewriter, error) {
	states := cfg.PseudoStates
	if len(states) == 0 {
		states = defaultPseudoStates
	}
	excluded := cfg.ExcludedPseudoElements
	if excluded == nil {
		excluded = defaultExcludedPseudoElements
	}
	prefix := cfg.ClassPrefix
	if prefix == "" {
		prefix = DefaultClassPrefix
	}

	matcher, err := NewMatcher(states)
	if err != nil {
		return nil, err
	}

	return &Rewriter{
		matcher:  matcher,
		excluded: append([]string(nil), excluded...),
		prefix:   prefix,
	}, nil
}

// Matcher returns the pseudo-state matcher backing r
func (r *Rewriter) Matcher() *Matcher {
	return r.matcher
}

// marker is the class fragment that identifies already rewritten selectors
func (r *Rewriter) marker() string {
	return "." + r.prefix
}

// RewriteSelector returns the ordered alternatives for a single selector:
// the original first, then the class variant, then the ancestor variant.
// Selectors without an unescaped pseudo-state, or that already carry a
// forcing class, come back unchanged.
func (r *Rewriter) RewriteSelector(selector string, shadow bool) ([]string, error) {
	if strings.Contains(selector, r.marker()) {
		return []string{selector}, nil
	}

	found, err := r.matcher.Contains(selector)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{selector}, nil
	}

	plain, states, err := r.matcher.Extract(selector)
	if err != nil {
		return nil, err
	}

	classSelector := ""
	if !r.targetsExcludedPseudoElement(selector, states) {
		classSelector, err = r.matcher.ReplaceWithClasses(selector, r.prefix)
		if err != nil {
			return nil, err
		}
	}

	// :host() and ::slotted() already scope to the host, no forwarding
	if strings.HasPrefix(selector, ":host(") || strings.HasPrefix(selector, "::slotted(") {
		return keepSelectors(selector, classSelector), nil
	}

	var classes strings.Builder
	for _, state := range states {
		classes.WriteString(r.marker())
		classes.WriteString(state)
	}

	var ancestorSelector string
	if shadow {
		ancestorSelector = ":host(" + classes.String() + ") " + plain
	} else {
		ancestorSelector = classes.String() + " " + plain
	}

	return keepSelectors(selector, classSelector, strings.TrimSpace(ancestorSelector)), nil
}

// targetsExcludedPseudoElement reports whether any state is applied directly
// to an excluded pseudo-element at the end of selector.
func (r *Rewriter) targetsExcludedPseudoElement(selector string, states []PseudoState) bool {
	for _, state := range states {
		for _, element := range r.excluded {
			if strings.HasSuffix(selector, element+":"+state) {
				return true
			}
		}
	}
	return false
}

// keepSelectors drops empty candidates, duplicates and anything holding an
// empty negation.
func keepSelectors(candidates ...string) []string {
	kept := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || strings.Contains(c, emptyNegation) || contains(kept, c) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// RewriteSelectorList rewrites every top-level selector in list and joins
// the surviving alternatives with ", ".
func (r *Rewriter) RewriteSelectorList(list string, shadow bool) (string, error) {
	var out []string
	for _, selector := range SplitSelectors(list) {
		alternatives, err := r.RewriteSelector(selector, shadow)
		if err != nil {
			return "", err
		}
		for _, alt := range alternatives {
			if !contains(out, alt) {
				out = append(out, alt)
			}
		}
	}
	return strings.Join(out, ", "), nil
}

// RewriteRule replaces the selector list at the start of cssText with its
// rewritten form, leaving the declaration block untouched.
func (r *Rewriter) RewriteRule(cssText, selectorText string, shadow bool) (string, error) {
	rewritten, err := r.RewriteSelectorList(selectorText, shadow)
	if err != nil {
		return "", fmt.Errorf("rewrite %q: %w", selectorText, err)
	}
	if !strings.Contains(cssText, selectorText) {
		return "", fmt.Errorf("rewrite %q: selector not found in rule text", selectorText)
	}
	return strings.Replace(cssText, selectorText, rewritten, 1), nil
}

// contains checks if a string slice contains a value
func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
