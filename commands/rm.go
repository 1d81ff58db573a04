package commands

import (
	"fmt"

	"github.com/wshell/wsh/core/vos"
)

// Rm implements a POSIX rm command.
func Rm(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "rm [-rf] FILE...",
		Short: "Remove files or directories.",
	}

	recursive := cmd.Flags().BoolLong("recursive", 'r', "remove directories and their contents")
	force := cmd.Flags().BoolLong("force", 'f', "ignore missing files")

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 && !*force {
			fmt.Fprintln(virtOS.Stderr(), "rm: missing operand")
			return 1
		}

		exitCode := 0
		for _, arg := range args {
			stat, err := virtOS.Stat(arg)
			if err != nil {
				if !*force {
					fmt.Fprintf(virtOS.Stderr(), "rm: cannot remove %q: no such file or directory\n", arg)
					exitCode = 1
				}
				continue
			}

			if stat.IsDir() && !*recursive {
				fmt.Fprintf(virtOS.Stderr(), "rm: cannot remove %q: is a directory\n", arg)
				exitCode = 1
				continue
			}

			if *recursive {
				err = virtOS.RemoveAll(arg)
			} else {
				err = virtOS.Remove(arg)
			}
			if err != nil {
				fmt.Fprintf(virtOS.Stderr(), "rm: cannot remove %q: %v\n", arg, err)
				exitCode = 1
			}
		}

		return exitCode
	})
}

var _ vos.ProcessFunc = Rm

func init() {
	mustAddCmd("rm", "Remove files or directories.", Rm)
}
