package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wshell/wsh/core/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init DIRECTORY",
	Short: "Write a default configuration into the directory.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Initialize(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s/%s for host %q\n",
			args[0], config.ConfigurationName, cfg.Hostname)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
