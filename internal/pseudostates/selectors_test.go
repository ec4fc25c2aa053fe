package pseudostates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSelectors(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{"single", "a:hover", []string{"a:hover"}},
		{"list", "a:hover, b:focus", []string{"a:hover", "b:focus"}},
		{"no spaces", "a,b", []string{"a", "b"}},
		{"nested function", ":is(a, b):hover, c", []string{":is(a, b):hover", "c"}},
		{"negation", "a:not(.x, .y), b", []string{"a:not(.x, .y)", "b"}},
		{"attribute", `[data-x="a,b"], c`, []string{`[data-x="a,b"]`, "c"}},
		{"empty entries", " , a ,, ", []string{"a"}},
		{"descendant", "nav  a:hover", []string{"nav  a:hover"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSelectors(tt.list))
		})
	}
}
