package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
)

// Interactive drives a Session from a line-edited terminal.
type Interactive struct {
	Session  *Session
	Readline *readline.Instance

	// Motd is written once before the first prompt.
	Motd string
}

// NewInteractive wraps the session in a readline loop. A nil cfg reads
// from the process's own terminal.
func NewInteractive(session *Session, cfg *readline.Config) (*Interactive, error) {
	if cfg == nil {
		cfg = &readline.Config{}
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Interactive{
		Session:  session,
		Readline: rl,
	}, nil
}

// Run reads and executes lines until EOF or an exit command. It returns
// the status of the last statement executed.
func (i *Interactive) Run() int {
	if i.Motd != "" {
		fmt.Fprint(i.Readline, i.Motd)
	}

	for {
		i.Readline.SetPrompt(i.Session.Prompt())
		line, err := i.Readline.Readline()

		switch {
		case err == io.EOF:
			return i.Session.LastStatus()

		case err == readline.ErrInterrupt:
			if !i.Session.Interrupt() {
				fmt.Fprintln(i.Readline, "^C")
			}
			continue

		case err != nil:
			fmt.Fprintf(i.Readline, "read error: %v\n", err)
			return StatusFailure

		case isExit(line):
			return i.Session.LastStatus()

		default:
			i.Session.Run(line)
		}
	}
}

// Close releases the underlying terminal.
func (i *Interactive) Close() error {
	return i.Readline.Close()
}

func isExit(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && fields[0] == "exit"
}
