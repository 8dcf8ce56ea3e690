package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored points",
		Long:          "List every stored point with its store-assigned ID, in insertion order.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	svc, closeFn, err := opts.openService()
	if err != nil {
		return f.Report(err)
	}
	defer closeFn()

	all, err := svc.ListPoints(cmd.Context())
	if err != nil {
		return f.Report(storageFailure(err))
	}

	if len(all) == 0 {
		return f.Result(newPointsResult(all), "No points stored.")
	}
	return f.Result(newPointsResult(all), pointsText("%d points:", all))
}
