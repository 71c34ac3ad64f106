package cmd

import (
	"patchverk/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(systemsCmd)
}

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "Lists the systems found in the patch root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectSystemsCommandHandler(overrides)
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
