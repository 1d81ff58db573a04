package commands

import (
	"fmt"
	"os"

	"github.com/wshell/wsh/core/vos"
)

// Mkdir implements a POSIX mkdir command.
func Mkdir(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [OPTION...] DIRECTORY...",
		Short: "Create directories if they don't exist.",
	}

	makeParents := cmd.Flags().BoolLong("parents", 'p', "make parents if needed")
	verbose := cmd.Flags().BoolLong("verbose", 'v', "print a line for every created directory")

	return cmd.Run(virtOS, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			fmt.Fprintln(virtOS.Stderr(), "mkdir: missing operand")
			return 1
		}

		var op func(path string, perm os.FileMode) error
		if *makeParents {
			op = virtOS.MkdirAll
		} else {
			op = virtOS.Mkdir
		}

		anyFailed := false
		for _, dir := range directories {
			err := op(dir, 0777)
			switch {
			case err != nil:
				fmt.Fprintf(virtOS.Stderr(), "mkdir: cannot create directory %q: %v\n", dir, err)
				anyFailed = true

			case *verbose:
				fmt.Fprintf(virtOS.Stdout(), "mkdir: created directory %q\n", dir)
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Mkdir

func init() {
	mustAddCmd("mkdir", "Create directories.", Mkdir)
}
