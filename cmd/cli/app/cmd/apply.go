package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"patchverk/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	applyCmd.Flags().StringVarP(&system, "system", "s", "", "System whose patches are applied")
	_ = applyCmd.MarkFlagRequired("system")
	_ = applyCmd.RegisterFlagCompletionFunc("system", SystemCompletion)
	kubeconfig = applyCmd.Flags().StringP("kubeconfig", "k", "", "Path to the kubeconfig file (default from config file or KUBECONFIG)")
	dryRun = applyCmd.Flags().Bool("dry-run", false, "Send the patches as a server-side dry run")
	fieldManager = applyCmd.Flags().String("field-manager", "", "Field manager recorded on patched resources (default \"patchverk\")")
	rootCmd.AddCommand(applyCmd)
}

var (
	kubeconfig   *string
	dryRun       *bool
	fieldManager *string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Applies the patches of a system to the cluster",
	Long: `Checks that the cluster is reachable, generates the patches of the given system and
applies them one by one. A failing patch is reported and the remaining patches are
still applied. Interrupting the command stops it before the next patch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("dry-run") {
			overrides.DryRun = dryRun
		}
		overrides.Kubeconfig = kubeconfig
		overrides.FieldManager = fieldManager

		handler, err := app.InjectApplyCommandHandler(overrides)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return handler.Handle(ctx, system)
	},
}
