package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/squares/internal/geom"
	"github.com/roach88/squares/internal/points"
)

func TestDecodePoints_JSON(t *testing.T) {
	ps, err := DecodePoints([]byte(`[{"x":1,"y":2},{"x":-3,"y":4}]`), FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(1, 2), geom.Pt(-3, 4)}, ps)
}

func TestDecodePoints_YAML(t *testing.T) {
	doc := `
- x: 0
  y: 0
- {x: 5, y: -1}
`
	ps, err := DecodePoints([]byte(doc), FormatYAML)

	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(5, -1)}, ps)
}

func TestDecodePoints_KeepsDuplicatesForService(t *testing.T) {
	// Duplicate detection belongs to the store, not the decoder.
	ps, err := DecodePoints([]byte(`[{"x":1,"y":1},{"x":1,"y":1}]`), FormatJSON)

	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func TestDecodePoints_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		format InputFormat
		data   string
	}{
		{"empty list json", FormatJSON, `[]`},
		{"empty list yaml", FormatYAML, `[]`},
		{"empty document json", FormatJSON, "  \n"},
		{"empty document yaml", FormatYAML, ""},
		{"malformed json", FormatJSON, `[{"x":1,`},
		{"malformed yaml", FormatYAML, "- x: [1\n"},
		{"float coordinate", FormatJSON, `[{"x":1.5,"y":2}]`},
		{"float coordinate yaml", FormatYAML, "- {x: 1.5, y: 2}"},
		{"string coordinate", FormatJSON, `[{"x":"1","y":2}]`},
		{"missing y", FormatJSON, `[{"x":1}]`},
		{"unknown field", FormatJSON, `[{"x":1,"y":2,"z":3}]`},
		{"object not list", FormatJSON, `{"x":1,"y":2}`},
		{"null", FormatJSON, `null`},
		{"null yaml", FormatYAML, `~`},
		{"unsupported format", InputFormat("toml"), `x = 1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePoints([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, points.ErrInvalidInput)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want InputFormat
	}{
		{"points.json", FormatJSON},
		{"dir/POINTS.JSON", FormatJSON},
		{"points.yaml", FormatYAML},
		{"points.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatForPath(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatForPath("points.csv")
	assert.ErrorIs(t, err, points.ErrInvalidInput)
}

func TestLoadPointsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.yml")
	require.NoError(t, os.WriteFile(path, []byte("- {x: 1, y: 1}\n"), 0644))

	ps, err := LoadPointsFile(path)

	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(1, 1)}, ps)
}

func TestLoadPointsFile_Missing(t *testing.T) {
	_, err := LoadPointsFile(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitCommandError, exitErr.Code)
	assert.Equal(t, ErrCodeReadFailed, exitErr.ErrCode)
}

func TestLoadPointsReader(t *testing.T) {
	ps, err := LoadPointsReader(strings.NewReader(`[{"x":2,"y":3}]`), FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(2, 3)}, ps)
}
