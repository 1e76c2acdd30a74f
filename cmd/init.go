package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gsh-dev/gsh/core/config"
)

// initCmd writes the default configuration file for editing.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		path, err := configPath()
		if err != nil {
			return err
		}
		return config.Initialize(afero.NewOsFs(), path, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
