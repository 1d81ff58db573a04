package shell

import (
	"fmt"
	"strings"

	"github.com/wshell/wsh/commands"
)

// sessionBuiltins are handled by the executor itself rather than the
// command registry.
var sessionBuiltins = []struct {
	name  string
	short string
}{
	{"clear", "Clear the terminal screen."},
	{"help", "Show this list."},
}

// helpBuiltin lists every available command.
func (s *Session) helpBuiltin() Result {
	var sb strings.Builder

	sb.WriteString("Available commands:\n")
	for _, entry := range commands.ListBuiltinCommands() {
		fmt.Fprintf(&sb, "  %-12s %s\n", entry.Name, entry.Short)
	}
	sb.WriteString("Session builtins:\n")
	for _, b := range sessionBuiltins {
		fmt.Fprintf(&sb, "  %-12s %s\n", b.name, b.short)
	}
	sb.WriteString("Commands may be shadowed by scripts in the override directory.\n")

	return Result{Stdout: sb.String(), Status: StatusOK}
}
