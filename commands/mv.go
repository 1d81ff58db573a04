package commands

import (
	"fmt"
	"path"

	"github.com/wshell/wsh/core/vos"
)

// Mv implements a minimal POSIX mv command.
func Mv(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "mv SOURCE... DEST",
		Short: "Move or rename files.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			fmt.Fprintln(virtOS.Stderr(), "mv: missing file operand")
			return 1
		}

		dest := args[len(args)-1]
		sources := args[:len(args)-1]

		destIsDir := false
		if info, err := virtOS.Stat(dest); err == nil && info.IsDir() {
			destIsDir = true
		}
		if len(sources) > 1 && !destIsDir {
			fmt.Fprintf(virtOS.Stderr(), "mv: target %q is not a directory\n", dest)
			return 1
		}

		exitCode := 0
		for _, source := range sources {
			target := dest
			if destIsDir {
				target = path.Join(dest, path.Base(source))
			}
			if err := virtOS.Rename(source, target); err != nil {
				fmt.Fprintf(virtOS.Stderr(), "mv: cannot move %q to %q: %v\n", source, target, err)
				exitCode = 1
			}
		}
		return exitCode
	})
}

var _ vos.ProcessFunc = Mv

func init() {
	mustAddCmd("mv", "Move or rename files.", Mv)
}
