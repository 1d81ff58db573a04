// Package vostest builds deterministic virtual systems for command tests.
package vostest

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/wshell/wsh/core/vos"
)

// TestHostname is reported by every OS built here.
const TestHostname = "testhost"

// NewDeterministicOS returns a standalone Proc with a fresh in-memory
// filesystem and a fixed environment so golden outputs are stable.
func NewDeterministicOS() *vos.Proc {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/root", 0700)

	cwd := "/root"

	proc := &vos.Proc{
		VEnv: vos.NewMapEnvFromEnvList([]string{
			"HOME=/root",
			"USER=root",
			"SHELL=/bin/wsh",
		}),
		VIO:  vos.NewNullIO(),
		Host: TestHostname,
	}
	proc.GetwdFn = func() string { return cwd }
	proc.ChdirFn = func(dir string) error {
		cwd = vos.Resolve(cwd, dir)
		return nil
	}
	proc.VFS = vos.NewRelativeFs(fs, proc.Getwd)

	return proc
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int

	// VOS is the system the command ran against. It is built on first use
	// and kept across runs so tests can seed files between them.
	VOS *vos.Proc

	// Setup runs against the OS before the process starts, for seeding
	// files or environment variables.
	Setup func(vos.VOS) error
}

func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
	}
}

// CombinedOutput runs the command and returns its stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the command and waits for it to complete.
func (c *Cmd) Run() error {
	if c.VOS == nil {
		c.VOS = NewDeterministicOS()
	}
	proc := c.VOS
	proc.Argv = c.Argv

	stdin := c.Stdin
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	proc.VIO = vos.NewVIOAdapter(stdin, c.Stdout, c.Stderr)

	if c.Setup != nil {
		if err := c.Setup(proc); err != nil {
			return err
		}
	}

	c.ExitStatus = c.Process(proc)
	return nil
}
