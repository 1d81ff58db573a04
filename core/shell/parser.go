package shell

import (
	"fmt"
	"strings"
)

// Reserved words. They can never appear in the command-name position but
// stay legal as bare arguments elsewhere.
var keywords = map[string]bool{
	"if":   true,
	"then": true,
	"else": true,
	"fi":   true,
}

func isKeyword(tok token) bool {
	return tok.kind == tokWord && keywords[tok.text]
}

// Parse turns one newline-free line into its top-level statements, split on
// top-level ';'. A blank line yields an empty slice. Parse never fails to
// the caller: a line with no valid derivation yields a single ErrorNode.
// The descent is single-pass and deterministic, so the same input always
// produces the identical AST.
func Parse(line string) []Node {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	toks, err := lex(line)
	if err != nil {
		return []Node{&ErrorNode{Msg: err.Error()}}
	}

	p := &parser{toks: toks}
	stmts, err := p.parseStatements(func() bool { return p.at(tokEOF) })
	if err != nil {
		return []Node{&ErrorNode{Msg: err.Error()}}
	}
	return stmts
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) cur() token {
	return p.toks[p.pos]
}

func (p *parser) at(kind tokenType) bool {
	return p.cur().kind == kind
}

func (p *parser) atWord(text string) bool {
	tok := p.cur()
	return tok.kind == tokWord && tok.text == text
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokenType) (token, error) {
	if !p.at(kind) {
		return token{}, p.errUnexpected()
	}
	return p.next(), nil
}

func (p *parser) expectWord(text string) error {
	if !p.atWord(text) {
		return fmt.Errorf("expected %q near %s", text, p.describe())
	}
	p.next()
	return nil
}

func (p *parser) describe() string {
	tok := p.cur()
	if tok.kind == tokWord || tok.kind == tokString {
		return fmt.Sprintf("%q", tok.text)
	}
	return fmt.Sprintf("%q", tok.kind.String())
}

func (p *parser) errUnexpected() error {
	return fmt.Errorf("unexpected %s at offset %d", p.describe(), p.cur().pos)
}

// parseStatements implements statement_list: statements separated by ';'
// with an optional trailing ';'. isEnd reports whether the current token
// terminates the list (EOF, ')', or an 'else'/'fi' keyword depending on
// context).
func (p *parser) parseStatements(isEnd func() bool) ([]Node, error) {
	var stmts []Node
	for {
		if isEnd() {
			return stmts, nil
		}
		if p.at(tokEOF) {
			return nil, fmt.Errorf("unexpected end of input")
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		switch {
		case p.at(tokSemi):
			p.next()
		case isEnd():
			return stmts, nil
		default:
			return nil, p.errUnexpected()
		}
	}
}

// parseStatement implements: statement := logical_seq ('&')?. The '&&' and
// '||' operators bind tighter than the trailing '&', which the lexer
// guarantees by matching "&&" before "&".
func (p *parser) parseStatement() (Node, error) {
	n, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	if p.at(tokAmp) {
		p.next()
		n.setBackground(true)
	}
	return n, nil
}

// parseLogical implements: logical_seq := (if_stmt | pipeline)
// (('&&' | '||') pipeline)*, left-associative.
func (p *parser) parseLogical() (Node, error) {
	var left Node
	var err error
	if p.atWord("if") {
		left, err = p.parseIf()
	} else {
		left, err = p.parsePipeline()
	}
	if err != nil {
		return nil, err
	}

	for p.at(tokAnd) || p.at(tokOr) {
		op := p.next()
		right, err := p.parsePipeline()
		if err != nil {
			return nil, err
		}
		if op.kind == tokAnd {
			left = &AndNode{Left: left, Right: right}
		} else {
			left = &OrNode{Left: left, Right: right}
		}
	}
	return left, nil
}

// parsePipeline implements: pipeline := group ('|' group)*,
// left-associative.
func (p *parser) parsePipeline() (Node, error) {
	left, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	for p.at(tokPipe) {
		p.next()
		right, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		left = &PipelineNode{From: left, To: right}
	}
	return left, nil
}

// parseGroup implements: group := command (redirect)?
// | '(' statement_list ')' (redirect)?.
func (p *parser) parseGroup() (Node, error) {
	if p.at(tokLParen) {
		p.next()
		stmts, err := p.parseStatements(func() bool { return p.at(tokRParen) })
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		group := &GroupNode{Commands: stmts}
		red, err := p.parseRedirect()
		if err != nil {
			return nil, err
		}
		group.Redirect = red
		return group, nil
	}
	return p.parseCommand()
}

// parseCommand implements: command := IDENTIFIER (WORD)* (redirect)?.
// The command name must be a bareword and must not be a reserved word;
// reserved words remain legal as arguments.
func (p *parser) parseCommand() (Node, error) {
	tok := p.cur()
	if tok.kind != tokWord {
		return nil, p.errUnexpected()
	}
	if keywords[tok.text] {
		return nil, fmt.Errorf("unexpected keyword %q at offset %d", tok.text, tok.pos)
	}
	p.next()

	cmd := &CommandNode{Name: tok.text}
	for p.at(tokWord) || p.at(tokString) {
		cmd.Args = append(cmd.Args, p.next().text)
	}

	red, err := p.parseRedirect()
	if err != nil {
		return nil, err
	}
	cmd.Redirect = red
	return cmd, nil
}

// parseRedirect implements: redirect := '>>' WORD | '>' WORD. Returns nil
// when no redirection operator is present. The lexer already guarantees
// ">>" wins over ">" at the same position.
func (p *parser) parseRedirect() (*Redirect, error) {
	var appendMode bool
	switch {
	case p.at(tokAppend):
		appendMode = true
	case p.at(tokRedir):
		appendMode = false
	default:
		return nil, nil
	}
	p.next()

	if !p.at(tokWord) && !p.at(tokString) {
		return nil, fmt.Errorf("missing redirection target near %s", p.describe())
	}
	return &Redirect{Append: appendMode, File: p.next().text}, nil
}

// parseIf implements:
//
//	if_stmt := 'if' pipeline ';' 'then' statement_list ';' 'fi'
//	         | 'if' pipeline ';' 'then' statement_list ';' 'else' statement_list ';' 'fi'
//
// The ';' preceding 'else'/'fi' is consumed by parseStatements as a
// statement separator.
func (p *parser) parseIf() (Node, error) {
	if err := p.expectWord("if"); err != nil {
		return nil, err
	}

	cond, err := p.parsePipeline()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	if err := p.expectWord("then"); err != nil {
		return nil, err
	}

	thenStmts, err := p.parseStatements(func() bool {
		return p.atWord("else") || p.atWord("fi")
	})
	if err != nil {
		return nil, err
	}

	var elseStmts []Node
	if p.atWord("else") {
		p.next()
		elseStmts, err = p.parseStatements(func() bool { return p.atWord("fi") })
		if err != nil {
			return nil, err
		}
		if elseStmts == nil {
			elseStmts = []Node{}
		}
	}

	if err := p.expectWord("fi"); err != nil {
		return nil, err
	}

	return &IfNode{Cond: cond, Then: thenStmts, Else: elseStmts}, nil
}
