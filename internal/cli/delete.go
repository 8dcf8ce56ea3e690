package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <x> <y> | delete <x>,<y>",
		Short: "Delete a point",
		Long: `Delete the point at the given coordinates. Fails if no such point exists.
Put "--" before the coordinates when the first one is negative.

Examples:
  squares delete 1 2
  squares delete 3,-4`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, cmd, args)
		},
	}
}

func runDelete(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	x, y, err := parseCoords("delete", args)
	if err != nil {
		return f.Report(err)
	}

	svc, closeFn, err := opts.openService()
	if err != nil {
		return f.Report(err)
	}
	defer closeFn()

	if err := svc.DeletePoint(cmd.Context(), x, y); err != nil {
		return f.Report(storageFailure(err))
	}

	return f.Result(PointView{X: x, Y: y},
		fmt.Sprintf("Point (%d, %d) deleted successfully.", x, y))
}
