package commands

import (
	"fmt"

	"github.com/wshell/wsh/core/vos"
)

// Env implements the UNIX env command, printing the environment.
func Env(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "env",
		Short: "Print the environment.",
	}

	return cmd.Run(virtOS, func() int {
		for _, entry := range virtOS.Environ() {
			fmt.Fprintln(virtOS.Stdout(), entry)
		}
		return 0
	})
}

var _ vos.ProcessFunc = Env

func init() {
	mustAddCmd("env", "Print the environment.", Env)
}
