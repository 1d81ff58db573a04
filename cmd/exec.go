package cmd

import (
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/wshell/wsh/core/shell"
)

var execCommand string

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec [flags] [COMMAND...]",
	Short: "Run a single command line and exit with its status.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		line := execCommand
		if line == "" {
			line = strings.Join(args, " ")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		session := shell.NewSession(afero.NewMemMapFs(), cmd.OutOrStdout(), cfg)
		if user := os.Getenv("USER"); user != "" {
			session.SetUser(user)
		}

		status := session.Run(line)
		if status != 0 {
			os.Exit(status)
		}
		return nil
	},
}

func init() {
	execCmd.Flags().StringVarP(&execCommand, "command", "c", "", "command line to run")
	rootCmd.AddCommand(execCmd)
}
