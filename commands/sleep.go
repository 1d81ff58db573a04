package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wshell/wsh/core/vos"
)

// Sleep implements the UNIX sleep command. It installs a cooperative
// cancel hook so a session interrupt wakes it early.
func Sleep(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "sleep SECONDS",
		Short: "Pause for a number of seconds.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			fmt.Fprintln(virtOS.Stderr(), "sleep: missing operand")
			return 1
		}

		seconds, err := strconv.ParseFloat(args[0], 64)
		if err != nil || seconds < 0 {
			fmt.Fprintf(virtOS.Stderr(), "sleep: invalid time interval %q\n", args[0])
			return 1
		}

		cancelled := make(chan struct{})
		virtOS.SetCancel(func() {
			close(cancelled)
		})

		select {
		case <-time.After(time.Duration(seconds * float64(time.Second))):
			return 0
		case <-cancelled:
			return 130
		}
	})
}

var _ vos.ProcessFunc = Sleep

func init() {
	mustAddCmd("sleep", "Pause for a number of seconds.", Sleep)
}
