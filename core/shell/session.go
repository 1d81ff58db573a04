package shell

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/wshell/wsh/core/config"
	"github.com/wshell/wsh/core/vos"
)

// Well-known environment variables.
const (
	EnvHome     = "HOME"
	EnvPWD      = "PWD"
	EnvPrompt   = "PS1"
	EnvHostname = "HOSTNAME"
	EnvUser     = "USER"

	DefaultUser = "user"
)

// Session is the process-wide shell state: the filesystem, environment,
// working directory, last exit status, input history, the single
// cancellable foreground task, and the background job counter. A Session
// lives for the lifetime of one shell.
type Session struct {
	fs   afero.Fs
	env  vos.VEnv
	sink io.Writer

	hostname    string
	overrideDir string

	mu          sync.Mutex
	cwd         string
	lastStatus  int
	history     []string
	jobCounter  int
	cancellable *vos.Proc
	pty         vos.PTY

	// positional holds $1..$N while an override script runs.
	positional []string
	// activeOverrides guards against an override script invoking itself.
	activeOverrides map[string]bool
}

// NewSession builds a session over fs writing un-redirected output to sink.
// A nil cfg uses the built-in defaults. The configured home and override
// directories are created if missing and the session starts in the home
// directory.
func NewSession(fs afero.Fs, sink io.Writer, cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if sink == nil {
		sink = io.Discard
	}

	env := vos.NewMapEnv()
	for k, v := range cfg.Env {
		env.Setenv(k, v)
	}
	env.Setenv(EnvHome, cfg.HomeDir)
	env.Setenv(EnvHostname, cfg.Hostname)
	env.Setenv(EnvPrompt, cfg.Prompt)
	if env.Getenv(EnvUser) == "" {
		env.Setenv(EnvUser, DefaultUser)
	}

	s := &Session{
		fs:              fs,
		env:             env,
		sink:            sink,
		hostname:        cfg.Hostname,
		overrideDir:     cfg.OverrideDir,
		cwd:             "/",
		pty:             vos.PTY{Width: 80, Height: 24, Term: "dumb"},
		activeOverrides: make(map[string]bool),
	}

	fs.MkdirAll(cfg.HomeDir, 0755)
	fs.MkdirAll(cfg.OverrideDir, 0755)
	// Chdir in case the home dir couldn't be created.
	_ = s.Chdir(cfg.HomeDir)
	s.env.Setenv(EnvPWD, s.Getwd())

	return s
}

// Env exposes the session environment.
func (s *Session) Env() vos.VEnv {
	return s.env
}

// Fs exposes the session filesystem rooted at /.
func (s *Session) Fs() afero.Fs {
	return s.fs
}

// SetPTY records the dimensions of the attached terminal.
func (s *Session) SetPTY(pty vos.PTY) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pty = pty
}

// GetPTY returns the attached terminal info.
func (s *Session) GetPTY() vos.PTY {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty
}

// SetUser sets the login user reflected in the environment and prompt.
func (s *Session) SetUser(name string) {
	s.env.Setenv(EnvUser, name)
}

// Getwd returns the current working directory, always absolute.
func (s *Session) Getwd() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cwd
}

// Chdir changes the working directory after verifying the target exists
// and is a directory.
func (s *Session) Chdir(dir string) error {
	target := vos.Resolve(s.Getwd(), dir)

	stat, err := s.fs.Stat(target)
	switch {
	case err != nil:
		return fmt.Errorf("%s: no such file or directory", dir)
	case !stat.IsDir():
		return fmt.Errorf("%s: not a directory", dir)
	}

	s.mu.Lock()
	s.cwd = target
	s.mu.Unlock()
	s.env.Setenv(EnvPWD, target)
	return nil
}

// LastStatus returns the exit status of the most recent statement.
func (s *Session) LastStatus() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStatus
}

func (s *Session) setLastStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastStatus = status
}

// History returns a copy of the input history, oldest first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.history...)
}

// AddHistory records one submitted line.
func (s *Session) AddHistory(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, line)
}

func (s *Session) nextJob() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobCounter++
	return s.jobCounter
}

// Interrupt cancels the current foreground command, if any. It reports
// whether a cooperative cancel hook was invoked; when it returns false the
// caller should just report the interrupt and return to the prompt.
func (s *Session) Interrupt() bool {
	s.mu.Lock()
	proc := s.cancellable
	s.mu.Unlock()

	if proc == nil {
		return false
	}
	return proc.Cancel()
}

func (s *Session) setCancellable(proc *vos.Proc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancellable = proc
}

func (s *Session) clearCancellable(proc *vos.Proc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancellable == proc {
		s.cancellable = nil
	}
}

// Run parses and evaluates one line of input: the statement driver.
// Foreground statements run in program order, each completing before the
// next begins, with their output written to the sink. Background
// statements are scheduled as detached tasks and acknowledged with a job
// id; their output is discarded unless the statement carries a
// redirection. Run returns the session's last exit status.
func (s *Session) Run(line string) int {
	if strings.TrimSpace(line) != "" {
		s.AddHistory(line)
	}

	for _, stmt := range Parse(line) {
		if stmt.Background() {
			id := s.nextJob()
			fmt.Fprintf(s.sink, "[%d]\n", id)
			node := stmt
			go s.eval(node, "", false)
			continue
		}

		res := s.eval(stmt, "", true)
		if res.Stdout != "" {
			io.WriteString(s.sink, res.Stdout)
		}
	}

	return s.LastStatus()
}

// Prompt renders the PS1-style prompt, expanding \u, \h, \w and \$.
func (s *Session) Prompt() string {
	prompt := s.env.Getenv(EnvPrompt)
	if prompt == "" {
		prompt = config.DefaultPrompt
	}
	prompt = strings.ReplaceAll(prompt, `\u`, s.env.Getenv(EnvUser))
	prompt = strings.ReplaceAll(prompt, `\h`, s.hostname)

	pwd := s.Getwd()
	home := s.env.Getenv(EnvHome)
	if home != "" && strings.HasPrefix(pwd, home) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)
	prompt = strings.ReplaceAll(prompt, `\$`, "$")

	return prompt
}
