package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <x> <y> | add <x>,<y>",
		Short: "Add a point",
		Long: `Add a lattice point. Fails if a point with the same coordinates exists.

Put "--" before the coordinates when the first one is negative.

Examples:
  squares add 1 2
  squares add -- -3 4
  squares add 3,-4`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args)
		},
	}
}

func runAdd(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	x, y, err := parseCoords("add", args)
	if err != nil {
		return f.Report(err)
	}

	svc, closeFn, err := opts.openService()
	if err != nil {
		return f.Report(err)
	}
	defer closeFn()

	sp, err := svc.AddPoint(cmd.Context(), x, y)
	if err != nil {
		return f.Report(storageFailure(err))
	}

	return f.Result(PointView{ID: sp.ID, X: sp.X, Y: sp.Y},
		fmt.Sprintf("Point (%d, %d) added successfully.", x, y))
}
