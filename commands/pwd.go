package commands

import (
	"fmt"

	"github.com/wshell/wsh/core/vos"
)

// Pwd implements the UNIX pwd command.
func Pwd(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(virtOS, func() int {
		fmt.Fprintln(virtOS.Stdout(), virtOS.Getwd())
		return 0
	})
}

var _ vos.ProcessFunc = Pwd

func init() {
	mustAddCmd("pwd", "Print the current working directory.", Pwd)
}
