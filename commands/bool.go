package commands

import "github.com/wshell/wsh/core/vos"

// True implements the UNIX true command.
func True(virtOS vos.VOS) int {
	return 0
}

// False implements the UNIX false command.
func False(virtOS vos.VOS) int {
	return 1
}

func init() {
	mustAddCmd("true", "Do nothing, successfully.", True)
	mustAddCmd("false", "Do nothing, unsuccessfully.", False)
}
