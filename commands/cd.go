package commands

import (
	"fmt"

	"github.com/wshell/wsh/core/vos"
)

// Cd changes the session's working directory. With no argument it returns
// home.
func Cd(virtOS vos.VOS) int {
	args := virtOS.Args()

	switch len(args) {
	case 1:
		args = append(args, virtOS.Getenv("HOME"))
		fallthrough
	case 2:
		if err := virtOS.Chdir(args[1]); err != nil {
			fmt.Fprintf(virtOS.Stderr(), "cd: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintln(virtOS.Stderr(), "cd: too many arguments")
		return 1
	}
}

var _ vos.ProcessFunc = Cd

func init() {
	mustAddCmd("cd", "Change the working directory.", Cd)
}
