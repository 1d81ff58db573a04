package commands

import (
	"fmt"

	"github.com/wshell/wsh/core/vos"
)

// Hostname prints the configured hostname.
func Hostname(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "hostname",
		Short: "Show the system's host name.",
	}

	return cmd.Run(virtOS, func() int {
		fmt.Fprintln(virtOS.Stdout(), virtOS.Hostname())
		return 0
	})
}

var _ vos.ProcessFunc = Hostname

func init() {
	mustAddCmd("hostname", "Show the system's host name.", Hostname)
}
