package commands

import (
	"fmt"

	"github.com/wshell/wsh/core/vos"
)

// History prints the lines the session has executed so far.
func History(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "history",
		Short: "Display the session's command history.",
	}

	return cmd.Run(virtOS, func() int {
		for i, line := range virtOS.History() {
			fmt.Fprintf(virtOS.Stdout(), "%5d  %s\n", i+1, line)
		}
		return 0
	})
}

var _ vos.ProcessFunc = History

func init() {
	mustAddCmd("history", "Display command history.", History)
}
