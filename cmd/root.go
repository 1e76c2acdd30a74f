// Package cmd holds the command line surface of gsh.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/gsh-dev/gsh/core"
	"github.com/gsh-dev/gsh/core/config"
)

var (
	cfgPath string
	verbose bool
)

// configPath resolves the configuration file location: the --config flag if
// given, otherwise FileName under the user's home directory.
func configPath() (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, config.FileName), nil
}

func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return config.Load(afero.NewOsFs(), path)
}

// newLogger builds the session logger. Logs go to stderr so they never mix
// with redirected command output.
func newLogger() pslog.Logger {
	level := pslog.InfoLevel
	if verbose {
		level = pslog.DebugLevel
	}
	return pslog.NewWithOptions(os.Stderr, pslog.Options{
		Mode:     pslog.ModeConsole,
		MinLevel: level,
	})
}

// shellStatus carries the interactive session's exit status out to Execute.
var shellStatus int

// rootCmd starts the interactive session when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:     "gsh",
	Short:   "An interactive shell",
	Long:    `gsh is an interactive shell with line editing, TAB completion, and output redirection.`,
	Version: core.Version,
	Args:    cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		shell, err := core.NewShell(cfg, newLogger())
		if err != nil {
			return err
		}
		shellStatus = shell.Run()
		return nil
	},
}

// Execute runs the root command and returns the process exit status.
// This is called by main.main().
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return shellStatus
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")
	rootCmd.Flags().BoolP("version", "V", false, "print the version and exit")
	rootCmd.SetVersionTemplate("gsh {{.Version}}\n")
}
