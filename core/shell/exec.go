package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/wshell/wsh/commands"
	"github.com/wshell/wsh/core/vos"
)

// assignRegexp matches a VAR=value command name.
var assignRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=.+`)

// Evaluate runs one AST node with the given inbound stdin and returns what
// the subtree captured. It never panics and never returns an error: every
// failure is folded into the Result status and, where user-visible, a
// message on the output sink.
func (s *Session) Evaluate(node Node, stdin string) Result {
	return s.eval(node, stdin, true)
}

// eval is the recursive evaluator. foreground is threaded explicitly
// through the call chain so detached background tasks never register
// themselves as the session's cancellable command.
func (s *Session) eval(node Node, stdin string, foreground bool) Result {
	var res Result

	switch n := node.(type) {
	case *ErrorNode:
		res = Result{Stdout: "parse error: " + n.Msg + "\n", Status: StatusSerious}

	case *CommandNode:
		res = s.evalCommand(n, stdin, foreground)

	case *PipelineNode:
		// The pipeline's status reflects only the last stage.
		from := s.eval(n.From, stdin, foreground)
		res = s.eval(n.To, from.Stdout, foreground)

	case *AndNode:
		left := s.eval(n.Left, stdin, foreground)
		if left.Status == StatusOK {
			right := s.eval(n.Right, stdin, foreground)
			res = Result{Stdout: left.Stdout + right.Stdout, Status: right.Status}
		} else {
			res = left
		}

	case *OrNode:
		left := s.eval(n.Left, stdin, foreground)
		if left.Status != StatusOK {
			right := s.eval(n.Right, stdin, foreground)
			res = Result{Stdout: left.Stdout + right.Stdout, Status: right.Status}
		} else {
			res = left
		}

	case *GroupNode:
		// No early exit: every child runs, sharing the inbound stdin.
		var sb strings.Builder
		status := StatusOK
		for _, child := range n.Commands {
			r := s.eval(child, stdin, foreground)
			sb.WriteString(r.Stdout)
			status = r.Status
		}
		res = Result{Stdout: sb.String(), Status: status}

	case *IfNode:
		cond := s.eval(n.Cond, stdin, foreground)
		branch := n.Then
		if cond.Status != StatusOK {
			branch = n.Else
		}
		var sb strings.Builder
		status := StatusOK
		for _, child := range branch {
			r := s.eval(child, stdin, foreground)
			sb.WriteString(r.Stdout)
			status = r.Status
			if status != StatusOK {
				break
			}
		}
		res = Result{Stdout: sb.String(), Status: status}

	default:
		res = Result{Stdout: fmt.Sprintf("unknown node %T\n", node), Status: StatusSerious}
	}

	res = s.applyRedirect(node, res)
	s.setLastStatus(res.Status)
	return res
}

// evalCommand handles assignment expressions and command dispatch.
func (s *Session) evalCommand(n *CommandNode, stdin string, foreground bool) Result {
	if len(n.Args) == 0 && assignRegexp.MatchString(n.Name) {
		parts := strings.SplitN(n.Name, "=", 2)
		s.env.Setenv(parts[0], s.expand(parts[1]))
		return Result{Status: StatusOK}
	}

	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = s.expand(arg)
	}

	return s.dispatch(n.Name, args, stdin, foreground)
}

// expand substitutes $VAR, ${VAR}, $? and, inside override scripts, the
// positional parameters $1..$9 and $@. Unset variables expand to the empty
// string.
func (s *Session) expand(word string) string {
	return os.Expand(word, func(key string) string {
		switch {
		case key == "?":
			return strconv.Itoa(s.LastStatus())
		case key == "@":
			s.mu.Lock()
			defer s.mu.Unlock()
			return strings.Join(s.positional, " ")
		case len(key) == 1 && key[0] >= '1' && key[0] <= '9':
			s.mu.Lock()
			defer s.mu.Unlock()
			if i := int(key[0] - '1'); i < len(s.positional) {
				return s.positional[i]
			}
			return ""
		default:
			return s.env.Getenv(key)
		}
	})
}

// dispatch resolves a command name. Resolution order: an override script in
// the override directory, then a registered command, then the session
// builtins, then "command not found".
func (s *Session) dispatch(name string, args []string, stdin string, foreground bool) Result {
	if res, ok := s.runOverride(name, args, stdin, foreground); ok {
		return res
	}

	if proc := commands.Lookup(name); proc != nil {
		return s.runProcess(proc, name, args, stdin, foreground)
	}

	switch name {
	case "help":
		return s.helpBuiltin()
	case "clear":
		return Result{Stdout: "\x1b[H\x1b[2J", Status: StatusOK}
	}

	fmt.Fprintf(s.sink, "command not found: %s\n", name)
	return Result{Status: StatusNotFound}
}

// runOverride executes an override script shadowing name, if one exists.
// Scripts are written in the shell's own grammar and re-parsed line by
// line; they are never host code. The boolean reports whether an override
// was found. A script currently being executed does not shadow itself, so
// it can delegate to the command it wraps.
func (s *Session) runOverride(name string, args []string, stdin string, foreground bool) (Result, bool) {
	if s.overrideDir == "" || strings.Contains(name, "/") {
		return Result{}, false
	}

	s.mu.Lock()
	active := s.activeOverrides[name]
	s.mu.Unlock()
	if active {
		return Result{}, false
	}

	data, err := afero.ReadFile(s.fs, path.Join(s.overrideDir, name))
	if err != nil {
		return Result{}, false
	}

	s.mu.Lock()
	s.activeOverrides[name] = true
	savedPositional := s.positional
	s.positional = args
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.activeOverrides, name)
		s.positional = savedPositional
		s.mu.Unlock()
	}()

	var sb strings.Builder
	status := StatusOK
	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, stmt := range Parse(line) {
			r := s.eval(stmt, stdin, foreground)
			sb.WriteString(r.Stdout)
			status = r.Status
		}
	}

	return Result{Stdout: sb.String(), Status: status}, true
}

// runProcess invokes a registered command with its writes funneled into a
// private buffer so the node's stdout is exactly what the subtree
// produced. A panic inside the command is caught at this boundary,
// reported as "<name>: <message>", and becomes a generic failure; it never
// propagates past the executor.
func (s *Session) runProcess(fn vos.ProcessFunc, name string, args []string, stdin string, foreground bool) (res Result) {
	buf := &bytes.Buffer{}
	proc := &vos.Proc{
		VEnv:    s.env,
		VIO:     vos.NewVIOAdapter(strings.NewReader(stdin), buf, s.sink),
		VFS:     vos.NewRelativeFs(s.fs, s.Getwd),
		Argv:    append([]string{name}, args...),
		Host:    s.hostname,
		PTYInfo: s.GetPTY(),
		Hist:    s.History(),
		Last:    s.LastStatus(),
		GetwdFn: s.Getwd,
		ChdirFn: s.Chdir,
	}

	// Only the one foreground task may be interrupted.
	if foreground {
		s.setCancellable(proc)
		defer s.clearCancellable(proc)
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(s.sink, "%s: %v\n", name, r)
			res = Result{Stdout: buf.String(), Status: StatusFailure}
		}
	}()

	status := fn(proc)
	return Result{Stdout: buf.String(), Status: status}
}

// applyRedirect writes the node's captured output to its redirection
// target, if any. On success the node's outward stdout becomes empty: the
// content went to storage, not to the caller. On failure the error is
// surfaced through the sink and the status forced to a generic failure;
// the in-memory output is not recovered.
func (s *Session) applyRedirect(node Node, res Result) Result {
	red := node.Redirection()
	if red == nil {
		return res
	}

	target := vos.Resolve(s.Getwd(), red.File)
	content := res.Stdout
	if red.Append {
		existing, err := afero.ReadFile(s.fs, target)
		switch {
		case err == nil:
			content = string(existing) + content
		case errors.Is(err, fs.ErrNotExist):
			// Missing file appends from empty.
		default:
			fmt.Fprintf(s.sink, "%s: %v\n", red.File, err)
			return Result{Status: StatusFailure}
		}
	}

	if err := afero.WriteFile(s.fs, target, []byte(content), 0644); err != nil {
		fmt.Fprintf(s.sink, "%s: %v\n", red.File, err)
		return Result{Status: StatusFailure}
	}

	return Result{Status: res.Status}
}
