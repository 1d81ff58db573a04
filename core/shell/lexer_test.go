package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token) []tokenType {
	var out []tokenType
	for _, tok := range toks {
		out = append(out, tok.kind)
	}
	return out
}

func TestLex(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []tokenType
	}{
		{"empty", "", []tokenType{tokEOF}},
		{"words", "echo hello world", []tokenType{tokWord, tokWord, tokWord, tokEOF}},
		{"pipe", "a | b", []tokenType{tokWord, tokPipe, tokWord, tokEOF}},
		{"and beats amp", "a && b", []tokenType{tokWord, tokAnd, tokWord, tokEOF}},
		{"trailing amp", "a &", []tokenType{tokWord, tokAmp, tokEOF}},
		{"or", "a || b", []tokenType{tokWord, tokOr, tokWord, tokEOF}},
		{"append beats redir", "a >> f", []tokenType{tokWord, tokAppend, tokWord, tokEOF}},
		{"redir", "a > f", []tokenType{tokWord, tokRedir, tokWord, tokEOF}},
		{"semi", "a; b", []tokenType{tokWord, tokSemi, tokWord, tokEOF}},
		{"parens", "(a)", []tokenType{tokLParen, tokWord, tokRParen, tokEOF}},
		{"no spaces", "a|b&&c", []tokenType{tokWord, tokPipe, tokWord, tokAnd, tokWord, tokEOF}},
		{"single quotes", "echo 'hi there'", []tokenType{tokWord, tokString, tokEOF}},
		{"double quotes", `echo "hi there"`, []tokenType{tokWord, tokString, tokEOF}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := lex(tc.input)
			require.Nil(t, err)
			assert.Equal(t, tc.want, kinds(toks))
		})
	}
}

func TestLexQuoteStripping(t *testing.T) {
	toks, err := lex(`echo 'one two' "three four"`)
	require.Nil(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "one two", toks[1].text)
	assert.Equal(t, "three four", toks[2].text)
}

func TestLexErrors(t *testing.T) {
	cases := map[string]string{
		"unterminated single": "echo 'oops",
		"unterminated double": `echo "oops`,
		"input redirection":   "cat < file",
		"backtick":            "echo `date`",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := lex(input)
			assert.NotNil(t, err)
		})
	}
}
