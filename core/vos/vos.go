// Package vos provides the virtual OS surface that shell commands run
// against: an environment, standard I/O streams, and a filesystem. None of
// it touches the host OS; the filesystem is an afero.Fs and "processes" are
// plain function calls.
package vos

// PTY describes the terminal a session is attached to.
type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// VOS is the view of the system a single command invocation gets.
type VOS interface {
	VEnv
	VIO
	VFS

	// Args holds command line arguments, including the command as Args[0].
	Args() []string

	// Getwd returns the working directory of the invocation.
	Getwd() string

	// Chdir changes the session's working directory.
	Chdir(dir string) error

	// Hostname reports the configured machine name.
	Hostname() string

	// GetPTY returns information about the attached terminal.
	GetPTY() PTY

	// History returns the session's input history, oldest first.
	History() []string

	// LastStatus returns the exit status of the previous statement.
	LastStatus() int

	// SetCancel installs a cooperative cancellation hook for the running
	// command. The hook may be invoked at most once, from another goroutine.
	SetCancel(hook func())
}

// ProcessFunc is the entry point of a command, analogous to main. The
// returned value is the command's exit status.
type ProcessFunc func(virtOS VOS) int
