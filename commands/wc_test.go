package commands

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/wshell/wsh/core/vos"
)

func TestTallyReader(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  tally
	}{
		{"empty", "", tally{}},
		{"one line", "hello world\n", tally{lines: 1, words: 2, bytes: 12, chars: 12}},
		{"no trailing newline", "a b c", tally{lines: 0, words: 3, bytes: 5, chars: 5}},
		{"multibyte", "héllo\n", tally{lines: 1, words: 1, bytes: 7, chars: 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tallyReader("", strings.NewReader(tc.input))
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWc(t *testing.T) {
	seed := func(virtOS vos.VOS) error {
		if err := afero.WriteFile(virtOS, "/a.txt", []byte("one two\nthree\n"), 0600); err != nil {
			return err
		}
		return afero.WriteFile(virtOS, "/b.txt", []byte("four\n"), 0600)
	}

	cases := goldenTestSuite{
		"stdin":      {Args: []string{"wc"}, Stdin: "one two\nthree\n"},
		"file":       {Args: []string{"wc", "/a.txt"}, Setup: seed},
		"total":      {Args: []string{"wc", "/a.txt", "/b.txt"}, Setup: seed},
		"lines-only": {Args: []string{"wc", "-l", "/a.txt"}, Setup: seed},
		"missing":    {Args: []string{"wc", "/nope.txt"}},
	}

	cases.Run(t, Wc)
}
