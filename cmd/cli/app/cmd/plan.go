package cmd

import (
	"patchverk/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	planCmd.Flags().StringVarP(&system, "system", "s", "", "System whose patches are listed")
	_ = planCmd.MarkFlagRequired("system")
	_ = planCmd.RegisterFlagCompletionFunc("system", SystemCompletion)
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Lists the patches apply would send, without contacting the cluster",
	Long: `Generates the patches of the given system and prints them per kind, in the order
apply would send them. Malformed patch files are reported exactly as apply would
report them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPlanCommandHandler(overrides)
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), system)
	},
}
