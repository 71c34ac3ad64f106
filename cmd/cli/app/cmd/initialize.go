package cmd

import (
	"patchverk/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Generates a new configuration file with default values",
	Long:  `A new configuration file is written to ./.patchverk.yaml, or to the path given with --config. The file is not created if it already exists.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler(overrides)
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
