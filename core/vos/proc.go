package vos

import "sync"

// Proc is the concrete per-invocation view of the system handed to a
// command. The executor builds one Proc per dispatch wired back into its
// session; tests build standalone ones.
type Proc struct {
	VEnv
	VIO
	VFS

	// Argv holds command line arguments, including the command as Argv[0].
	Argv []string
	// Host is the configured hostname.
	Host string
	// PTYInfo describes the attached terminal.
	PTYInfo PTY
	// Hist is the session input history at dispatch time.
	Hist []string
	// Last is the exit status of the previous statement.
	Last int
	// GetwdFn and ChdirFn bridge to the owning session's working directory.
	GetwdFn func() string
	ChdirFn func(dir string) error

	mu     sync.Mutex
	cancel func()
}

var _ VOS = (*Proc)(nil)

// Args implements VOS.Args.
func (p *Proc) Args() []string {
	return p.Argv
}

// Getwd implements VOS.Getwd.
func (p *Proc) Getwd() string {
	if p.GetwdFn == nil {
		return "/"
	}
	return p.GetwdFn()
}

// Chdir implements VOS.Chdir.
func (p *Proc) Chdir(dir string) error {
	if p.ChdirFn == nil {
		return nil
	}
	return p.ChdirFn(dir)
}

// Hostname implements VOS.Hostname.
func (p *Proc) Hostname() string {
	return p.Host
}

// GetPTY implements VOS.GetPTY.
func (p *Proc) GetPTY() PTY {
	return p.PTYInfo
}

// History implements VOS.History.
func (p *Proc) History() []string {
	return p.Hist
}

// LastStatus implements VOS.LastStatus.
func (p *Proc) LastStatus() int {
	return p.Last
}

// SetCancel implements VOS.SetCancel.
func (p *Proc) SetCancel(hook func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancel = hook
}

// Cancel invokes the command's cancellation hook, if one was installed.
// It reports whether a hook ran. The hook is cleared so repeated interrupts
// don't fire it twice.
func (p *Proc) Cancel() bool {
	p.mu.Lock()
	hook := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if hook == nil {
		return false
	}
	hook()
	return true
}
