package contour

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/pieceworks/jigsaw/edgespec"
)

// EdgePathForTest builds a single edge as a standalone open path so tests
// can verify boundary complementarity without assembling full pieces.
func EdgePathForTest(from, to vec.Vec2, sp edgespec.Spec, tab float64) *path.Data {
	return buildEdge((&path.Data{}).MoveTo(from), from, to, sp, tab)
}
