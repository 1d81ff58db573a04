package commands

import (
	"fmt"

	"github.com/wshell/wsh/core/vos"
)

// Which reports whether each argument resolves to a known command.
func Which(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "which COMMAND...",
		Short: "Locate a command.",
	}

	return cmd.Run(virtOS, func() int {
		exitCode := 0
		for _, name := range cmd.Flags().Args() {
			if Lookup(name) != nil {
				fmt.Fprintf(virtOS.Stdout(), "/bin/%s\n", name)
			} else {
				exitCode = 1
			}
		}
		return exitCode
	})
}

var _ vos.ProcessFunc = Which

func init() {
	mustAddCmd("which", "Locate a command.", Which)
}
