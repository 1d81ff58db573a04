package commands

import (
	"fmt"
	"io"
	"path"

	"github.com/wshell/wsh/core/vos"
)

// Cp implements a minimal POSIX cp command.
func Cp(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cp SOURCE... DEST",
		Short: "Copy files.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			fmt.Fprintln(virtOS.Stderr(), "cp: missing file operand")
			return 1
		}

		dest := args[len(args)-1]
		sources := args[:len(args)-1]

		destIsDir := false
		if info, err := virtOS.Stat(dest); err == nil && info.IsDir() {
			destIsDir = true
		}
		if len(sources) > 1 && !destIsDir {
			fmt.Fprintf(virtOS.Stderr(), "cp: target %q is not a directory\n", dest)
			return 1
		}

		exitCode := 0
		for _, source := range sources {
			target := dest
			if destIsDir {
				target = path.Join(dest, path.Base(source))
			}
			if err := copyFile(virtOS, source, target); err != nil {
				fmt.Fprintf(virtOS.Stderr(), "cp: %v\n", err)
				exitCode = 1
			}
		}
		return exitCode
	})
}

func copyFile(virtOS vos.VOS, source, target string) error {
	in, err := virtOS.Open(source)
	if err != nil {
		return fmt.Errorf("cannot stat %q: no such file or directory", source)
	}
	defer in.Close()

	if info, err := in.Stat(); err == nil && info.IsDir() {
		return fmt.Errorf("-r not specified; omitting directory %q", source)
	}

	out, err := virtOS.Create(target)
	if err != nil {
		return fmt.Errorf("cannot create %q: %v", target, err)
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

var _ vos.ProcessFunc = Cp

func init() {
	mustAddCmd("cp", "Copy files.", Cp)
}
