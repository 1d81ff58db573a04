package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/cobra"

	"github.com/wshell/wsh/core/config"
)

var cfgPath string

// loadConfig resolves the configuration for a subcommand. A blank
// --config falls back to the built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wsh",
	Short: "A sandboxed shell over a virtual filesystem",
	Long: `wsh is a small command shell that runs entirely against an in-memory
filesystem. It can run interactively, execute one-shot commands, or serve
sessions over SSH.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config path, blank uses built-in defaults")
}
