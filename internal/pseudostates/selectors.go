package pseudostates

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SplitSelectors splits a selector list into its top-level selectors.
// Commas nested inside parentheses, attribute brackets or quoted strings do
// not split. Each selector is trimmed and empty entries are dropped.
func SplitSelectors(list string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			parts = append(parts, s)
		}
		current.Reset()
	}

	lexer := css.NewLexer(parse.NewInputString(list))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// EOF
			break
		}

		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken:
			// "not(" is a FunctionToken and carries its own paren
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				flush()
				continue
			}
		}

		current.Write(text)
	}
	flush()

	return parts
}
