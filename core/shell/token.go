// Package shell implements the wsh command language: a lexer and
// recursive-descent parser that turn one line of input into an AST, and an
// executor that evaluates the AST against a session with pipeline,
// redirection, logical-operator, conditional, and background semantics.
package shell

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenType int

const (
	tokEOF    tokenType = iota
	tokWord             // unquoted word
	tokString           // quoted word, quotes stripped
	tokPipe             // |
	tokAnd              // &&
	tokOr               // ||
	tokAmp              // &
	tokSemi             // ;
	tokRedir            // >
	tokAppend           // >>
	tokLParen           // (
	tokRParen           // )
)

func (t tokenType) String() string {
	switch t {
	case tokEOF:
		return "end of input"
	case tokWord:
		return "word"
	case tokString:
		return "string"
	case tokPipe:
		return "|"
	case tokAnd:
		return "&&"
	case tokOr:
		return "||"
	case tokAmp:
		return "&"
	case tokSemi:
		return ";"
	case tokRedir:
		return ">"
	case tokAppend:
		return ">>"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	default:
		return "unknown"
	}
}

type token struct {
	kind tokenType
	text string
	pos  int
}

// metachars delimit barewords. Backtick is reserved and never valid input.
const metachars = "|&<>;()'\"`"

func isMeta(ch byte) bool {
	return strings.IndexByte(metachars, ch) >= 0
}

// lex splits one newline-free line into tokens. Multi-character operators
// are matched longest-first so ">>" never lexes as two ">" and "&&" never
// splits into two "&".
func lex(line string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(line) {
		ch := line[i]

		if unicode.IsSpace(rune(ch)) {
			i++
			continue
		}

		switch ch {
		case '|':
			if i+1 < len(line) && line[i+1] == '|' {
				toks = append(toks, token{tokOr, "||", i})
				i += 2
			} else {
				toks = append(toks, token{tokPipe, "|", i})
				i++
			}
			continue
		case '&':
			if i+1 < len(line) && line[i+1] == '&' {
				toks = append(toks, token{tokAnd, "&&", i})
				i += 2
			} else {
				toks = append(toks, token{tokAmp, "&", i})
				i++
			}
			continue
		case '>':
			if i+1 < len(line) && line[i+1] == '>' {
				toks = append(toks, token{tokAppend, ">>", i})
				i += 2
			} else {
				toks = append(toks, token{tokRedir, ">", i})
				i++
			}
			continue
		case ';':
			toks = append(toks, token{tokSemi, ";", i})
			i++
			continue
		case '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
			continue
		case ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
			continue
		case '\'', '"':
			end := strings.IndexByte(line[i+1:], ch)
			if end < 0 {
				return nil, fmt.Errorf("unterminated %c quote at offset %d", ch, i)
			}
			toks = append(toks, token{tokString, line[i+1 : i+1+end], i})
			i += end + 2
			continue
		case '<', '`':
			return nil, fmt.Errorf("unsupported character %q at offset %d", ch, i)
		}

		// Bareword: everything up to whitespace or a metacharacter.
		start := i
		for i < len(line) && !unicode.IsSpace(rune(line[i])) && !isMeta(line[i]) {
			i++
		}
		toks = append(toks, token{tokWord, line[start:i], start})
	}

	toks = append(toks, token{tokEOF, "", len(line)})
	return toks, nil
}
