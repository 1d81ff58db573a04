package main

import "github.com/wshell/wsh/cmd"

func main() {
	cmd.Execute()
}
