package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"simple", "cd /tmp", []string{"cd", "/tmp"}},
		{"collapsed delimiters", "  a   b\tc \n", []string{"a", "b", "c"}},
		{"empty", "", nil},
		{"all whitespace", " \t\r\n\a ", nil},
		{"bell delimiter", "a\ab", []string{"a", "b"}},
		{"leading and trailing", "\t x ", []string{"x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.line)

			if tc.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
