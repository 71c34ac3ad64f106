package cmd

import (
	"patchverk/cmd/cli/app"

	"github.com/spf13/cobra"
)

var system string

// SystemCompletion completes --system with the systems found in the patch root.
func SystemCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	systemEnumerator, err := app.InjectSystemEnumerator(overrides)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	systems, err := systemEnumerator.Enumerate()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return systems, cobra.ShellCompDirectiveNoFileComp
}
