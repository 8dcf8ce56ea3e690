package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/squares/internal/geom"
)

// seedPoints is the default lattice block: a 3x2 grid plus (0,2) and (1,2).
var seedPoints = []geom.Point{
	geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1),
	geom.Pt(2, 0), geom.Pt(2, 1), geom.Pt(0, 2), geom.Pt(1, 2),
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Import the default lattice block",
		Long: `Import the default 8-point lattice block:

  (0,2) (1,2)
  (0,1) (1,1) (2,1)
  (0,0) (1,0) (2,0)

Like import, this is all-or-nothing and fails if any of the points exist.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, cmd)
		},
	}
}

func runSeed(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	svc, closeFn, err := opts.openService()
	if err != nil {
		return f.Report(err)
	}
	defer closeFn()

	added, err := svc.ImportPoints(cmd.Context(), seedPoints)
	if err != nil {
		return f.Report(storageFailure(err))
	}

	return f.Result(newPointsResult(added), printer.Sprintf("Seeded %d points.", len(added)))
}
