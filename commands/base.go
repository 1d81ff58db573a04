// Package commands holds the registry of built-in shell commands. Each
// command registers itself from an init function; the executor resolves
// names through Lookup.
package commands

import (
	"fmt"
	"io"
	"sort"

	getopt "github.com/pborman/getopt/v2"

	"github.com/wshell/wsh/core/vos"
)

// CommandEntry is one registered command.
type CommandEntry struct {
	Name  string
	Short string
	Proc  vos.ProcessFunc
}

// allCommands maps a command name to its implementation.
var allCommands = make(map[string]CommandEntry)

// mustAddCmd registers a command, panicking on duplicate names so
// collisions surface at startup rather than at dispatch time.
func mustAddCmd(name, short string, proc vos.ProcessFunc) {
	if _, ok := allCommands[name]; ok {
		panic(fmt.Sprintf("duplicate command: %s", name))
	}
	allCommands[name] = CommandEntry{Name: name, Short: short, Proc: proc}
}

// Lookup returns the command registered under name, or nil.
func Lookup(name string) vos.ProcessFunc {
	entry, ok := allCommands[name]
	if !ok {
		return nil
	}
	return entry.Proc
}

// ListBuiltinCommands returns all registered commands sorted by name.
func ListBuiltinCommands() []CommandEntry {
	out := make([]CommandEntry, 0, len(allCommands))
	for _, entry := range allCommands {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// SimpleCommand handles the boilerplate shared by most commands: flag
// parsing, --help, and usage errors.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not. If this is non-nil
	// when Run() is called, then the default help flag isn't added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and always
	// runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was successful call the callback.
func (s *SimpleCommand) Run(virtOS vos.VOS, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(virtOS.Args(), nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(virtOS.Stderr(), "error: %s\n\n", err)

		s.PrintHelp(virtOS.Stdout())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return 0
	}

	return callback()
}

// RunE runs the command reporting the callback's error, if any, on stderr
// prefixed with the command name.
func (s *SimpleCommand) RunE(virtOS vos.VOS, callback func() error) int {
	return s.Run(virtOS, func() int {
		if err := callback(); err != nil {
			fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", virtOS.Args()[0], err)
			return 1
		}
		return 0
	})
}

// RunEachArg runs the callback once per positional argument, reporting
// errors individually. The exit status is non-zero if any call failed.
func (s *SimpleCommand) RunEachArg(virtOS vos.VOS, callback func(arg string) error) int {
	return s.Run(virtOS, func() int {
		exitCode := 0
		for _, arg := range s.Flags().Args() {
			if err := callback(arg); err != nil {
				fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", virtOS.Args()[0], err)
				exitCode = 1
			}
		}
		return exitCode
	})
}
