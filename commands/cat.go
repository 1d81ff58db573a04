package commands

import (
	"fmt"
	"io"

	"github.com/wshell/wsh/core/vos"
)

// Cat implements the UNIX cat command. With no arguments it copies stdin
// to stdout, which is what makes it useful at the end of a pipeline.
func Cat(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cat [FILE]...",
		Short: "Concatenate FILE(s), or standard input, to standard output.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()

		if len(args) == 0 {
			io.Copy(virtOS.Stdout(), virtOS.Stdin())
			return 0
		}

		for _, arg := range args {
			fd, err := virtOS.Open(arg)
			if err != nil {
				fmt.Fprintf(virtOS.Stderr(), "cat: %s: no such file or directory\n", arg)
				return 1
			}

			io.Copy(virtOS.Stdout(), fd)
			fd.Close()
		}

		return 0
	})
}

var _ vos.ProcessFunc = Cat

func init() {
	mustAddCmd("cat", "Concatenate files to standard output.", Cat)
}
