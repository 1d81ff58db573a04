package commands

import (
	"time"

	"github.com/wshell/wsh/core/vos"
)

// Touch creates the named files if missing and bumps their timestamps.
func Touch(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "touch FILE...",
		Short: "Update file timestamps, creating the files if needed.",
	}

	return cmd.RunEachArg(virtOS, func(arg string) error {
		if _, err := virtOS.Stat(arg); err != nil {
			fd, err := virtOS.Create(arg)
			if err != nil {
				return err
			}
			return fd.Close()
		}

		now := time.Now()
		return virtOS.Chtimes(arg, now, now)
	})
}

var _ vos.ProcessFunc = Touch

func init() {
	mustAddCmd("touch", "Update file timestamps.", Touch)
}
