package shell

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, line string) Node {
	t.Helper()
	stmts := Parse(line)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestParseBlank(t *testing.T) {
	assert.Nil(t, Parse(""))
	assert.Nil(t, Parse("   \t  "))
}

func TestParseCommand(t *testing.T) {
	cmd, ok := parseOne(t, "echo hello world").(*CommandNode)
	require.True(t, ok)
	assert.Equal(t, "echo", cmd.Name)
	assert.Equal(t, []string{"hello", "world"}, cmd.Args)
	assert.Nil(t, cmd.Redirection())
	assert.False(t, cmd.Background())
}

func TestParseQuotedArgs(t *testing.T) {
	cmd, ok := parseOne(t, `echo 'hello world' "two words"`).(*CommandNode)
	require.True(t, ok)
	assert.Equal(t, []string{"hello world", "two words"}, cmd.Args)
}

func TestParseRedirect(t *testing.T) {
	cmd, ok := parseOne(t, "echo hi > out.txt").(*CommandNode)
	require.True(t, ok)
	require.NotNil(t, cmd.Redirection())
	assert.Equal(t, "out.txt", cmd.Redirection().File)
	assert.False(t, cmd.Redirection().Append)

	appendCmd, ok := parseOne(t, "echo hi >> out.txt").(*CommandNode)
	require.True(t, ok)
	require.NotNil(t, appendCmd.Redirection())
	assert.True(t, appendCmd.Redirection().Append)
}

func TestParsePipeline(t *testing.T) {
	pipe, ok := parseOne(t, "a | b | c").(*PipelineNode)
	require.True(t, ok)

	// Left-associative: (a | b) | c.
	inner, ok := pipe.From.(*PipelineNode)
	require.True(t, ok)
	assert.Equal(t, "a", inner.From.(*CommandNode).Name)
	assert.Equal(t, "b", inner.To.(*CommandNode).Name)
	assert.Equal(t, "c", pipe.To.(*CommandNode).Name)
}

func TestParseLogical(t *testing.T) {
	and, ok := parseOne(t, "a && b").(*AndNode)
	require.True(t, ok)
	assert.Equal(t, "a", and.Left.(*CommandNode).Name)
	assert.Equal(t, "b", and.Right.(*CommandNode).Name)

	or, ok := parseOne(t, "a || b").(*OrNode)
	require.True(t, ok)
	assert.Equal(t, "a", or.Left.(*CommandNode).Name)

	// Left-associative: (a && b) || c.
	mixed, ok := parseOne(t, "a && b || c").(*OrNode)
	require.True(t, ok)
	_, ok = mixed.Left.(*AndNode)
	assert.True(t, ok)
}

func TestParseBackground(t *testing.T) {
	// '&&' binds tighter than a trailing '&'.
	stmt := parseOne(t, "a && b &")
	and, ok := stmt.(*AndNode)
	require.True(t, ok)
	assert.True(t, and.Background())

	fg := parseOne(t, "a && b")
	assert.False(t, fg.Background())
}

func TestParseStatementList(t *testing.T) {
	stmts := Parse("a; b; c")
	require.Len(t, stmts, 3)

	// A trailing semicolon doesn't produce an empty statement.
	stmts = Parse("a; b;")
	require.Len(t, stmts, 2)
}

func TestParseGroup(t *testing.T) {
	group, ok := parseOne(t, "(a; b) > out.txt").(*GroupNode)
	require.True(t, ok)
	assert.Len(t, group.Commands, 2)
	require.NotNil(t, group.Redirection())
	assert.Equal(t, "out.txt", group.Redirection().File)
}

func TestParseIf(t *testing.T) {
	ifNode, ok := parseOne(t, "if true; then echo yes; fi").(*IfNode)
	require.True(t, ok)
	assert.Equal(t, "true", ifNode.Cond.(*CommandNode).Name)
	assert.Len(t, ifNode.Then, 1)
	assert.Nil(t, ifNode.Else)

	withElse, ok := parseOne(t, "if true; then echo yes; else echo no; fi").(*IfNode)
	require.True(t, ok)
	assert.NotNil(t, withElse.Else)
	assert.Len(t, withElse.Else, 1)
}

func TestParseKeywordPositions(t *testing.T) {
	// Reserved words can't be command names.
	for _, line := range []string{"if", "then", "fi echo", "else a"} {
		t.Run(line, func(t *testing.T) {
			_, ok := parseOne(t, line).(*ErrorNode)
			assert.True(t, ok, "expected parse error for %q", line)
		})
	}

	// But they stay legal as arguments.
	cmd, ok := parseOne(t, "echo if then fi").(*CommandNode)
	require.True(t, ok)
	assert.Equal(t, []string{"if", "then", "fi"}, cmd.Args)
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"echo 'unterminated",
		"a &&",
		"| a",
		"(a",
		"a > ",
		"if true; then echo yes",
		"cat < file",
	}

	for _, line := range cases {
		t.Run(line, func(t *testing.T) {
			stmts := Parse(line)
			require.Len(t, stmts, 1)
			_, ok := stmts[0].(*ErrorNode)
			assert.True(t, ok, "expected error node for %q", line)
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	lines := []string{
		"a | b && c || d &",
		"if a; then b; else c; fi",
		"(x; y) >> f",
	}
	for _, line := range lines {
		assert.True(t, reflect.DeepEqual(Parse(line), Parse(line)), line)
	}
}
