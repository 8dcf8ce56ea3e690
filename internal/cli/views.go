package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/squares/internal/geom"
	"github.com/roach88/squares/internal/points"
)

// PointView is the JSON shape of a point.
type PointView struct {
	ID string `json:"id,omitempty"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// PointsResult is the JSON payload of list, import and seed.
type PointsResult struct {
	Count  int         `json:"count"`
	Points []PointView `json:"points"`
}

// SquareView is the JSON shape of a square. Corners are in discovery order;
// Key holds the canonical sorted form.
type SquareView struct {
	ID      string      `json:"id"`
	Key     string      `json:"key"`
	Corners []PointView `json:"corners"`
}

// SquaresResult is the JSON payload of find.
type SquaresResult struct {
	Count   int          `json:"count"`
	Squares []SquareView `json:"squares"`
}

func newPointsResult(stored []geom.StoredPoint) PointsResult {
	views := make([]PointView, len(stored))
	for i, sp := range stored {
		views[i] = PointView{ID: sp.ID, X: sp.X, Y: sp.Y}
	}
	return PointsResult{Count: len(stored), Points: views}
}

func newSquaresResult(found []geom.Square) SquaresResult {
	views := make([]SquareView, len(found))
	for i, sq := range found {
		corners := make([]PointView, len(sq.Corners))
		for j, c := range sq.Corners {
			corners[j] = PointView{X: c.X, Y: c.Y}
		}
		key := sq.Key()
		views[i] = SquareView{ID: geom.SquareID(key), Key: key.String(), Corners: corners}
	}
	return SquaresResult{Count: len(found), Squares: views}
}

// pointsText renders stored points one per line under a count header.
func pointsText(header string, stored []geom.StoredPoint) string {
	var b strings.Builder
	b.WriteString(printer.Sprintf(header, len(stored)))
	for _, sp := range stored {
		fmt.Fprintf(&b, "\n  %-12s %s", sp.Point, sp.ID)
	}
	return b.String()
}

// parseCoords accepts either "<x> <y>" or a single "<x>,<y>" argument.
func parseCoords(op string, args []string) (int, int, error) {
	raw := args
	if len(args) == 1 {
		raw = strings.Split(args[0], ",")
	}
	if len(raw) != 2 {
		return 0, 0, points.NewInvalidInputError(op, fmt.Sprintf("expected two coordinates, got %q", strings.Join(args, " ")), nil)
	}

	x, err := strconv.Atoi(strings.TrimSpace(raw[0]))
	if err != nil {
		return 0, 0, points.NewInvalidInputError(op, fmt.Sprintf("invalid x coordinate %q", raw[0]), err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(raw[1]))
	if err != nil {
		return 0, 0, points.NewInvalidInputError(op, fmt.Sprintf("invalid y coordinate %q", raw[1]), err)
	}
	return x, y, nil
}
