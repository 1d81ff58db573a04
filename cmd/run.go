package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wshell/wsh/core/shell"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive shell on this terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		session := shell.NewSession(afero.NewMemMapFs(), cmd.OutOrStdout(), cfg)
		if user := os.Getenv("USER"); user != "" {
			session.SetUser(user)
		}

		interactive, err := shell.NewInteractive(session, nil)
		if err != nil {
			return err
		}
		defer interactive.Close()
		interactive.Motd = cfg.Motd

		// Forward ^C to the foreground command instead of dying.
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt)
		defer signal.Stop(sigs)
		go func() {
			for range sigs {
				session.Interrupt()
			}
		}()

		status := interactive.Run()
		if status != 0 {
			os.Exit(status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
