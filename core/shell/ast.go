package shell

import (
	"fmt"
	"strings"
)

// Redirect diverts a node's captured output to a file instead of the
// session's output sink.
type Redirect struct {
	// Append reads the existing file content first; otherwise the file is
	// overwritten.
	Append bool
	// File is the target path, resolved against the working directory at
	// evaluation time.
	File string
}

func (r *Redirect) String() string {
	if r.Append {
		return ">> " + r.File
	}
	return "> " + r.File
}

// Node is one parsed statement. It is a closed sum: exactly the types in
// this file implement it, so the executor can switch exhaustively.
type Node interface {
	fmt.Stringer

	// Redirection returns the node's output redirection, or nil.
	Redirection() *Redirect
	// Background reports whether the statement was suffixed with '&'. Only
	// meaningful on top-level statements.
	Background() bool

	setBackground(bool)
	node()
}

// modifiers carries the two optional decorations any statement node may
// have.
type modifiers struct {
	Redirect     *Redirect
	InBackground bool
}

func (m *modifiers) Redirection() *Redirect { return m.Redirect }
func (m *modifiers) Background() bool       { return m.InBackground }
func (m *modifiers) setBackground(v bool)   { m.InBackground = v }
func (m *modifiers) node()                  {}

func (m *modifiers) suffix() string {
	var sb strings.Builder
	if m.Redirect != nil {
		sb.WriteString(" ")
		sb.WriteString(m.Redirect.String())
	}
	if m.InBackground {
		sb.WriteString(" &")
	}
	return sb.String()
}

// CommandNode is a simple command: a name followed by arguments. The name
// may itself be an assignment expression of the form VAR=value.
type CommandNode struct {
	modifiers
	Name string
	Args []string
}

func (n *CommandNode) String() string {
	parts := append([]string{n.Name}, n.Args...)
	return strings.Join(parts, " ") + n.suffix()
}

// PipelineNode feeds the captured output of From into To as stdin.
type PipelineNode struct {
	modifiers
	From Node
	To   Node
}

func (n *PipelineNode) String() string {
	return n.From.String() + " | " + n.To.String() + n.suffix()
}

// AndNode evaluates Right only if Left succeeded.
type AndNode struct {
	modifiers
	Left  Node
	Right Node
}

func (n *AndNode) String() string {
	return n.Left.String() + " && " + n.Right.String() + n.suffix()
}

// OrNode evaluates Right only if Left failed.
type OrNode struct {
	modifiers
	Left  Node
	Right Node
}

func (n *OrNode) String() string {
	return n.Left.String() + " || " + n.Right.String() + n.suffix()
}

// GroupNode is a parenthesized sequence. It evaluates like a sequence of
// statements sharing the inbound stdin; there is no subshell scoping.
type GroupNode struct {
	modifiers
	Commands []Node
}

func (n *GroupNode) String() string {
	parts := make([]string, len(n.Commands))
	for i, c := range n.Commands {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, "; ") + ")" + n.suffix()
}

// IfNode is a conditional. Else may be nil.
type IfNode struct {
	modifiers
	Cond Node
	Then []Node
	Else []Node
}

func (n *IfNode) String() string {
	var sb strings.Builder
	sb.WriteString("if ")
	sb.WriteString(n.Cond.String())
	sb.WriteString("; then ")
	for _, c := range n.Then {
		sb.WriteString(c.String())
		sb.WriteString("; ")
	}
	if n.Else != nil {
		sb.WriteString("else ")
		for _, c := range n.Else {
			sb.WriteString(c.String())
			sb.WriteString("; ")
		}
	}
	sb.WriteString("fi")
	sb.WriteString(n.suffix())
	return sb.String()
}

// ErrorNode is produced when no valid parse exists for the input. It
// carries no modifiers.
type ErrorNode struct {
	Msg string
}

func (n *ErrorNode) String() string         { return "parse error: " + n.Msg }
func (n *ErrorNode) Redirection() *Redirect { return nil }
func (n *ErrorNode) Background() bool       { return false }
func (n *ErrorNode) setBackground(bool)     {}
func (n *ErrorNode) node()                  {}
