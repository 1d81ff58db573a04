package vos

import (
	"io"
	"os"
)

// VIO holds the standard I/O streams of an invocation. Stdout is usually a
// private capture buffer owned by the executor; Stderr usually points at the
// session's output sink so diagnostics surface immediately.
type VIO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// NewVIOAdapter bundles plain readers and writers into a VIO. Nil streams
// are replaced with /dev/null equivalents.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	if stdin == nil {
		stdin = &devNull{}
	}
	if stdout == nil {
		stdout = &devNull{}
	}
	if stderr == nil {
		stderr = &devNull{}
	}
	return &VIOAdapter{IStdin: stdin, IStdout: stdout, IStderr: stderr}
}

// NewNullIO creates a /dev/null style VIO: reads fail and writes are
// discarded.
func NewNullIO() VIO {
	return NewVIOAdapter(nil, nil, nil)
}

type VIOAdapter struct {
	IStdin  io.Reader
	IStdout io.Writer
	IStderr io.Writer
}

var _ VIO = (*VIOAdapter)(nil)

func (v *VIOAdapter) Stdin() io.Reader {
	return v.IStdin
}

func (v *VIOAdapter) Stdout() io.Writer {
	return v.IStdout
}

func (v *VIOAdapter) Stderr() io.Writer {
	return v.IStderr
}

// devNull fails reads and discards writes.
type devNull struct{}

var _ io.Reader = (*devNull)(nil)
var _ io.Writer = (*devNull)(nil)

func (*devNull) Read([]byte) (int, error) {
	return 0, os.ErrClosed
}

func (*devNull) Write(b []byte) (int, error) {
	return len(b), nil
}
