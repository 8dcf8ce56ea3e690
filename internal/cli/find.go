package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/squares/internal/geom"
)

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find",
		Short: "Find every square formed by stored points",
		Long: `Enumerate every square, axis-aligned or rotated, whose four corners are
all stored points. Each square is reported once, with a content-addressed ID
that does not depend on the order its corners were found in.

Examples:
  squares find
  squares find --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(rootOpts, cmd)
		},
	}
}

func runFind(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	svc, closeFn, err := opts.openService()
	if err != nil {
		return f.Report(err)
	}
	defer closeFn()

	found, err := svc.FindSquares(cmd.Context())
	if err != nil {
		return f.Report(storageFailure(err))
	}

	return f.Result(newSquaresResult(found), squaresText(found))
}

func squaresText(found []geom.Square) string {
	if len(found) == 0 {
		return "No squares found."
	}

	var b strings.Builder
	if len(found) == 1 {
		b.WriteString("Found 1 square:")
	} else {
		b.WriteString(printer.Sprintf("Found %d squares:", len(found)))
	}
	for _, sq := range found {
		c := sq.Corners
		fmt.Fprintf(&b, "\n  %s %s %s %s  %s", c[0], c[1], c[2], c[3], sq.ID()[:12])
	}
	return b.String()
}
