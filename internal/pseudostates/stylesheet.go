package pseudostates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrAccessDenied is returned by Stylesheet.Rules when the rule list cannot
// be read at all, typically because the sheet came from another origin.
var ErrAccessDenied = errors.New("cssRules not accessible")

// Rule is a single entry of a stylesheet's rule list
type Rule interface {
	// CSSText is the full rule text, e.g. "a:hover { color: red; }"
	CSSText() string
	// SelectorText returns the selector list of a style rule. ok is false
	// for rules that carry no selector (at-rules, comments).
	SelectorText() (selector string, ok bool)
}

// Stylesheet is an ordered, index-addressable rule list that can be mutated
// in place.
type Stylesheet interface {
	Href() string
	Rules() ([]Rule, error)
	DeleteRule(index int) error
	InsertRule(text string, index int) error
}

// RuleKind classifies top-level entries of a parsed Sheet
type RuleKind int

const (
	// StyleRule is a qualified rule: "selector { declarations }"
	StyleRule RuleKind = iota
	// AtRule is any "@name ..." rule, with or without a block
	AtRule
	// CommentRule is a top-level comment kept for serialization
	CommentRule
)

// SheetRule is a rule parsed from stylesheet text
type SheetRule struct {
	Kind     RuleKind
	Text     string // "a:hover { color: red; }"
	Selector string // "a:hover" (StyleRule only)
	Line     int    // 1-based line of the first character (0 if inserted)
	Column   int    // 1-based column of the first character
}

// CSSText implements Rule
func (r *SheetRule) CSSText() string {
	return r.Text
}

// SelectorText implements Rule
func (r *SheetRule) SelectorText() (string, bool) {
	if r.Kind != StyleRule {
		return "", false
	}
	return r.Selector, true
}

// Sheet is an in-memory stylesheet parsed from CSS text. Only top-level
// rules are addressable; the contents of at-rule blocks are opaque.
type Sheet struct {
	href   string
	source string
	rules  []*SheetRule
}

// ParseSheet parses CSS text into a Sheet. href identifies the sheet in
// diagnostics (a file path or URL).
func ParseSheet(href, text string) *Sheet {
	return &Sheet{
		href:   href,
		source: text,
		rules:  parseRules(text),
	}
}

// Href implements Stylesheet
func (s *Sheet) Href() string {
	return s.href
}

// Rules implements Stylesheet
func (s *Sheet) Rules() ([]Rule, error) {
	rules := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		rules[i] = r
	}
	return rules, nil
}

// Len returns the number of top-level rules
func (s *Sheet) Len() int {
	return len(s.rules)
}

// Rule returns the rule at index
func (s *Sheet) Rule(index int) *SheetRule {
	return s.rules[index]
}

// SourceLine returns line n (1-based) of the text the sheet was parsed from,
// or "" when out of range.
func (s *Sheet) SourceLine(n int) string {
	if n < 1 {
		return ""
	}
	lines := strings.Split(s.source, "\n")
	if n > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[n-1], "\r")
}

// DeleteRule implements Stylesheet
func (s *Sheet) DeleteRule(index int) error {
	if index < 0 || index >= len(s.rules) {
		return fmt.Errorf("delete rule: index %d out of range [0,%d)", index, len(s.rules))
	}
	s.rules = append(s.rules[:index], s.rules[index+1:]...)
	return nil
}

// InsertRule implements Stylesheet. text must hold exactly one rule.
func (s *Sheet) InsertRule(text string, index int) error {
	if index < 0 || index > len(s.rules) {
		return fmt.Errorf("insert rule: index %d out of range [0,%d]", index, len(s.rules))
	}

	parsed := parseRules(text)
	if len(parsed) != 1 || parsed[0].Kind == CommentRule {
		return fmt.Errorf("insert rule: expected a single rule, got %d in %q", len(parsed), text)
	}
	rule := parsed[0]
	rule.Line, rule.Column = 0, 0

	s.rules = append(s.rules, nil)
	copy(s.rules[index+1:], s.rules[index:])
	s.rules[index] = rule
	return nil
}

// String serializes the sheet, one top-level rule per line
func (s *Sheet) String() string {
	var b strings.Builder
	for _, r := range s.rules {
		b.WriteString(r.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// ruleBuilder accumulates the tokens of one top-level rule
type ruleBuilder struct {
	text        strings.Builder
	kind        RuleKind
	selector    string
	hasSelector bool
	line, col   int
}

// parseRules splits CSS text into top-level rules using the tdewolff lexer.
// Braces are balanced on the way, so nested blocks (@media, nesting) stay
// inside their parent rule.
func parseRules(text string) []*SheetRule {
	var rules []*SheetRule
	var cur *ruleBuilder

	braces, parens := 0, 0
	line, col := 1, 1

	emit := func() {
		rules = append(rules, &SheetRule{
			Kind:     cur.kind,
			Text:     strings.TrimSpace(cur.text.String()),
			Selector: cur.selector,
			Line:     cur.line,
			Column:   cur.col,
		})
		cur = nil
	}

	lexer := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}

		startLine, startCol := line, col
		line, col = advance(line, col, data)

		if cur == nil {
			switch tt {
			case css.WhitespaceToken, css.CDOToken, css.CDCToken, css.SemicolonToken:
				continue
			case css.RightBraceToken:
				// stray closing brace at top level
				continue
			case css.CommentToken:
				rules = append(rules, &SheetRule{
					Kind:   CommentRule,
					Text:   string(data),
					Line:   startLine,
					Column: startCol,
				})
				continue
			}

			cur = &ruleBuilder{kind: StyleRule, line: startLine, col: startCol}
			if tt == css.AtKeywordToken {
				cur.kind = AtRule
			}
		}

		cur.text.Write(data)

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			parens++
		case css.RightParenthesisToken:
			if parens > 0 {
				parens--
			}
		case css.LeftBraceToken:
			if braces == 0 && cur.kind == StyleRule && !cur.hasSelector {
				prelude := cur.text.String()
				cur.selector = strings.TrimSpace(prelude[:len(prelude)-1])
				cur.hasSelector = true
			}
			braces++
		case css.RightBraceToken:
			if braces == 0 {
				break
			}
			braces--
			if braces == 0 {
				parens = 0
				emit()
			}
		case css.SemicolonToken:
			// "@import url(x);" ends at the semicolon
			if braces == 0 && parens == 0 && cur.kind == AtRule {
				emit()
			}
		}
	}

	// Unterminated blocks are closed at EOF
	if cur != nil && braces > 0 {
		cur.text.WriteString(strings.Repeat("}", braces))
		emit()
	} else if cur != nil && cur.kind == AtRule {
		emit()
	}

	return rules
}

// advance moves a 1-based line/column position past data
func advance(line, col int, data []byte) (int, int) {
	for _, c := range data {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
