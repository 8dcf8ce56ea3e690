package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/squares/internal/geom"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	InputFormat string // used only when reading stdin
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a batch of points",
		Long: `Import a list of points from a JSON or YAML file.

The file must be a non-empty list of {x, y} objects with integer
coordinates. The import is all-or-nothing: if any point duplicates a stored
point or another point in the file, nothing is imported.

Use "-" to read from stdin (see --input-format).

Examples:
  squares import points.json
  squares import points.yaml
  cat points.json | squares import -`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.InputFormat, "input-format", string(FormatJSON), "stdin format (json|yaml)")

	return cmd
}

func runImport(opts *ImportOptions, cmd *cobra.Command, path string) error {
	f := opts.formatter(cmd)

	var ps []geom.Point
	var err error
	if path == "-" {
		ps, err = LoadPointsReader(cmd.InOrStdin(), InputFormat(opts.InputFormat))
	} else {
		ps, err = LoadPointsFile(path)
	}
	if err != nil {
		return f.Report(err)
	}
	f.VerboseLog("loaded %d points from %s", len(ps), path)

	svc, closeFn, err := opts.openService()
	if err != nil {
		return f.Report(err)
	}
	defer closeFn()

	added, err := svc.ImportPoints(cmd.Context(), ps)
	if err != nil {
		return f.Report(storageFailure(err))
	}

	return f.Result(newPointsResult(added), printer.Sprintf("Imported %d points.", len(added)))
}
