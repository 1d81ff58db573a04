// Package core wires sessions to their front-ends.
package core

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/gliderlabs/ssh"
	"github.com/spf13/afero"
	gossh "golang.org/x/crypto/ssh"

	"github.com/wshell/wsh/core/config"
	"github.com/wshell/wsh/core/shell"
	"github.com/wshell/wsh/core/vos"
)

// Server exposes the shell over SSH. Every connection gets a fresh
// session with its own in-memory filesystem.
type Server struct {
	cfg       *config.Config
	sshServer *ssh.Server
}

// NewServer builds an SSH server for the configured port with a
// generated ed25519 host key.
func NewServer(cfg *config.Config) (*Server, error) {
	server := &Server{cfg: cfg}

	_, hostKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	signer, err := gossh.NewSignerFromKey(hostKey)
	if err != nil {
		return nil, err
	}

	server.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", cfg.SSHPort),
		Handler: func(s ssh.Session) {
			server.HandleConnection(s)
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			// The shell is its own sandbox, any password works.
			return true
		},
	}
	server.sshServer.AddHostKey(signer)

	return server, nil
}

// HandleConnection runs one shell session over the SSH channel.
func (srv *Server) HandleConnection(s ssh.Session) {
	if srv.cfg.SSHBanner != "" {
		io.WriteString(s, srv.cfg.SSHBanner)
	}

	session := shell.NewSession(afero.NewMemMapFs(), s, srv.cfg)
	if s.User() != "" {
		session.SetUser(s.User())
	}

	// Non-interactive: ssh host 'echo hi'
	if raw := s.RawCommand(); raw != "" {
		s.Exit(session.Run(raw))
		return
	}

	ptyInfo, winch, isPTY := s.Pty()
	session.SetPTY(vos.PTY{
		Width:  ptyInfo.Window.Width,
		Height: ptyInfo.Window.Height,
		Term:   ptyInfo.Term,
		IsPTY:  isPTY,
	})

	go func() {
		for window := range winch {
			session.SetPTY(vos.PTY{
				Width:  window.Width,
				Height: window.Height,
				Term:   ptyInfo.Term,
				IsPTY:  isPTY,
			})
		}
	}()

	interactive, err := shell.NewInteractive(session, &readline.Config{
		Stdin:  readline.NewCancelableStdin(s),
		Stdout: s,
		Stderr: s.Stderr(),
		FuncGetWidth: func() int {
			return session.GetPTY().Width
		},
		FuncIsTerminal: func() bool {
			return isPTY
		},
	})
	if err != nil {
		log.Printf("session setup failed: %v", err)
		s.Exit(1)
		return
	}
	defer interactive.Close()
	interactive.Motd = srv.cfg.Motd

	s.Exit(interactive.Run())
}

// ListenAndServe blocks serving connections.
func (srv *Server) ListenAndServe() error {
	log.Printf("starting SSH server on %s", srv.sshServer.Addr)
	return srv.sshServer.ListenAndServe()
}

// Shutdown stops the server, waiting for open sessions up to the
// context deadline.
func (srv *Server) Shutdown(ctx context.Context) error {
	return srv.sshServer.Shutdown(ctx)
}
