package cli

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/roach88/squares/internal/geom"
	"github.com/roach88/squares/internal/points"
)

//go:embed schema/points.cue
var pointsSchema string

// InputFormat identifies the encoding of an import file.
type InputFormat string

const (
	FormatJSON InputFormat = "json"
	FormatYAML InputFormat = "yaml"
)

// FormatForPath picks the input format from a file extension.
func FormatForPath(path string) (InputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", points.NewInvalidInputError("import",
		fmt.Sprintf("unsupported file extension %q (want .json, .yaml or .yml)", filepath.Ext(path)), nil)
}

// LoadPointsFile reads and decodes an import file.
// Read failures are ExitCommandError; content failures are INVALID_INPUT.
func LoadPointsFile(path string) ([]geom.Point, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "failed to read input", Err: err, ErrCode: ErrCodeReadFailed}
	}
	return DecodePoints(data, format)
}

// LoadPointsReader decodes an import payload from r.
func LoadPointsReader(r io.Reader, format InputFormat) ([]geom.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ExitError{Code: ExitCommandError, Message: "failed to read input", Err: err, ErrCode: ErrCodeReadFailed}
	}
	return DecodePoints(data, format)
}

// DecodePoints validates data against the embedded CUE schema and decodes
// it into points. JSON is extracted into a CUE expression; YAML is decoded with
// yaml.v3 first and then encoded into CUE, so both go through the same
// schema. An empty list is INVALID_INPUT.
func DecodePoints(data []byte, format InputFormat) ([]geom.Point, error) {
	cctx := cuecontext.New()

	schema := cctx.CompileString(pointsSchema, cue.Filename("points.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile import schema: %w", err)
	}

	var input cue.Value
	switch format {
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, points.NewInvalidInputError("import", "empty document", nil)
		}
		expr, err := cuejson.Extract("input.json", data)
		if err != nil {
			return nil, points.NewInvalidInputError("import", "malformed JSON: "+cueDetails(err), err)
		}
		input = cctx.BuildExpr(expr)
	case FormatYAML:
		var raw any
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, points.NewInvalidInputError("import", "empty document", nil)
			}
			return nil, points.NewInvalidInputError("import", "malformed YAML", err)
		}
		input = cctx.Encode(raw)
	default:
		return nil, points.NewInvalidInputError("import", fmt.Sprintf("unsupported format %q", format), nil)
	}
	if err := input.Err(); err != nil {
		return nil, points.NewInvalidInputError("import", "malformed document: "+cueDetails(err), err)
	}

	checked := schema.LookupPath(cue.ParsePath("#Points")).Unify(input)
	if err := checked.Validate(cue.Concrete(true)); err != nil {
		return nil, points.NewInvalidInputError("import", "document does not match schema: "+cueDetails(err), err)
	}

	var ps []geom.Point
	if err := checked.Decode(&ps); err != nil {
		return nil, points.NewInvalidInputError("import", "decode points", err)
	}
	if len(ps) == 0 {
		return nil, points.NewInvalidInputError("import", "no points to import", nil)
	}
	return ps, nil
}

// cueDetails flattens a CUE error list into one line.
func cueDetails(err error) string {
	return strings.Join(strings.Fields(cueerrors.Details(err, nil)), " ")
}
