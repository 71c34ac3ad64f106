package cmd

import (
	"os"

	"patchverk/internal/core"
	"patchverk/internal/core/domain"

	"github.com/spf13/cobra"
)

var overrides domain.ConfigOverrides

var rootCmd = &cobra.Command{
	Use:   "patchverk",
	Short: "Applies file-defined strategic merge patches to Kubernetes resources",
	Long: `Patchverk reads patch files from <patch-root>/<system>/patch and applies them
as strategic merge patches to the resources they name.

Patch files are laid out as <kind>/<namespace>/<name>.<variant>. Files with the
variant "default" are templates and are never applied.

Settings can be stored in ./.patchverk.yaml. Run 'patchverk initialize' to create
one. Flags take precedence over the file.

Common workflows:
  patchverk systems                                   List the known systems
  patchverk plan --system prod                        Show the patches for a system
  patchverk apply --kubeconfig ~/.kube/config --system prod`,
	SilenceUsage: true,
}

func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&overrides.ConfigPath, "config", "", "Configuration file (default "+core.DefaultConfigFilePath+")")
	overrides.PatchRoot = flags.String("patch-root", "", "Directory holding one folder per system (default \""+domain.DefaultPatchRoot+"\")")
	flags.BoolVarP(&overrides.Verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
