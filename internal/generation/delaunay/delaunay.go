// Package delaunay turns room centers into candidate corridors using the
// Bowyer-Watson triangulation.
package delaunay

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

const (
	// determinants below this are treated as collinear
	degenerateEpsilon = 1e-9
	// auxiliary vertices sit this many map extents away from the center.
	// Closer vertices swallow thin hull triangles when they are dropped.
	superTriangleScale = 1000
)

// Bounds is the map extent used to size the super-triangle
type Bounds struct {
	Rows int
	Cols int
}

// Result holds the surviving candidate edges between real rooms
type Result struct {
	// Edges are sorted by discovery order
	Edges []dungeon.CandidateEdge
	// Triangles lists room ids of each surviving triangle
	Triangles [][3]int
	// Degenerate counts triangles whose circumcircle could not be computed
	// plus centers skipped because they duplicate a vertex
	Degenerate int
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

type edgeEntry struct {
	refs int
	seq  int
}

type triangle struct {
	v [3]int

	cached     bool
	degenerate bool
	center     dungeon.Vec2
	radiusSq   float64
}

func (t *triangle) edges() [3]edgeKey {
	return [3]edgeKey{
		makeEdgeKey(t.v[0], t.v[1]),
		makeEdgeKey(t.v[1], t.v[2]),
		makeEdgeKey(t.v[2], t.v[0]),
	}
}

func (t *triangle) touchesAny(limit int) bool {
	return t.v[0] >= limit || t.v[1] >= limit || t.v[2] >= limit
}

type triangulator struct {
	points    []dungeon.Vec2
	real      int
	triangles []*triangle
	registry  map[edgeKey]*edgeEntry
	nextSeq   int
	degen     int
}

// Triangulate connects room centers. Fewer than three rooms skip the
// triangulation: one room has no edges and two rooms get one direct edge.
// A non-nil Result is returned with a DegenerateGeometry error when some
// containment tests had to be skipped.
func Triangulate(ctx context.Context, rooms []dungeon.Room, bounds Bounds) (*Result, error) {
	switch len(rooms) {
	case 0, 1:
		return &Result{}, nil
	case 2:
		return &Result{Edges: []dungeon.CandidateEdge{newCandidate(rooms, 0, 1, 0)}}, nil
	}

	t := newTriangulator(rooms, bounds)
	for i := 0; i < t.real; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "triangulation canceled")
		}
		t.insert(i)
	}
	t.dropAuxiliary()

	result := t.result(rooms)
	if len(result.Triangles) == 0 {
		// every center on one line: no real triangle survives, so chain them
		chained := chain(rooms)
		chained.Degenerate = result.Degenerate
		return chained, errors.DegenerateGeometryf("%d room centers are collinear", len(rooms)).
			WithMeta("degenerate", chained.Degenerate)
	}
	if result.Degenerate > 0 {
		return result, errors.DegenerateGeometryf("%d degenerate triangles skipped", result.Degenerate).
			WithMeta("degenerate", result.Degenerate)
	}
	return result, nil
}

func newTriangulator(rooms []dungeon.Room, bounds Bounds) *triangulator {
	n := len(rooms)
	points := make([]dungeon.Vec2, n+3)
	for i, r := range rooms {
		points[i] = r.Center()
	}

	extent := float64(bounds.Rows)
	if float64(bounds.Cols) > extent {
		extent = float64(bounds.Cols)
	}
	if extent < 1 {
		extent = 1
	}
	midX := float64(bounds.Rows) / 2
	midZ := float64(bounds.Cols) / 2
	points[n] = dungeon.Vec2{X: midX - superTriangleScale*extent, Z: midZ - extent}
	points[n+1] = dungeon.Vec2{X: midX, Z: midZ + superTriangleScale*extent}
	points[n+2] = dungeon.Vec2{X: midX + superTriangleScale*extent, Z: midZ - extent}

	t := &triangulator{
		points:   points,
		real:     n,
		registry: make(map[edgeKey]*edgeEntry),
	}
	t.addTriangle(n, n+1, n+2)
	return t
}

func (t *triangulator) insert(p int) {
	pt := t.points[p]

	var bad []*triangle
	for _, tri := range t.triangles {
		if t.circumcircleContains(tri, pt) {
			bad = append(bad, tri)
		}
	}
	if len(bad) == 0 {
		// only a center sitting on an existing vertex lands here
		t.degen++
		slog.Debug("Skipping room center that duplicates a vertex", "room_index", p)
		return
	}

	// boundary of the cavity: edges owned by exactly one bad triangle
	owners := make(map[edgeKey]int, len(bad)*3)
	for _, tri := range bad {
		for _, e := range tri.edges() {
			owners[e]++
		}
	}
	var polygon [][2]int
	for _, tri := range bad {
		for i := 0; i < 3; i++ {
			u, w := tri.v[i], tri.v[(i+1)%3]
			if owners[makeEdgeKey(u, w)] == 1 {
				polygon = append(polygon, [2]int{u, w})
			}
		}
	}

	isBad := make(map[*triangle]bool, len(bad))
	for _, tri := range bad {
		isBad[tri] = true
	}
	kept := make([]*triangle, 0, len(t.triangles)-len(bad)+len(polygon))
	for _, tri := range t.triangles {
		if !isBad[tri] {
			kept = append(kept, tri)
		}
	}
	t.triangles = kept
	for _, tri := range bad {
		t.releaseEdges(tri)
	}

	for _, e := range polygon {
		t.addTriangle(e[0], e[1], p)
	}
}

func (t *triangulator) addTriangle(a, b, c int) {
	tri := &triangle{v: [3]int{a, b, c}}
	for _, e := range tri.edges() {
		if entry, ok := t.registry[e]; ok {
			entry.refs++
			continue
		}
		t.registry[e] = &edgeEntry{refs: 1, seq: t.nextSeq}
		t.nextSeq++
	}
	t.triangles = append(t.triangles, tri)
}

func (t *triangulator) releaseEdges(tri *triangle) {
	for _, e := range tri.edges() {
		entry, ok := t.registry[e]
		if !ok {
			continue
		}
		entry.refs--
		if entry.refs <= 0 {
			delete(t.registry, e)
		}
	}
}

func (t *triangulator) dropAuxiliary() {
	kept := make([]*triangle, 0, len(t.triangles))
	for _, tri := range t.triangles {
		if tri.touchesAny(t.real) {
			t.releaseEdges(tri)
			continue
		}
		kept = append(kept, tri)
	}
	t.triangles = kept
}

// circumcircleContains caches the circumcircle on first use. Degenerate
// triangles never contain anything.
func (t *triangulator) circumcircleContains(tri *triangle, p dungeon.Vec2) bool {
	if !tri.cached {
		t.cacheCircumcircle(tri)
	}
	if tri.degenerate {
		return false
	}
	dx := p.X - tri.center.X
	dz := p.Z - tri.center.Z
	return dx*dx+dz*dz < tri.radiusSq
}

func (t *triangulator) cacheCircumcircle(tri *triangle) {
	tri.cached = true
	a, b, c := t.points[tri.v[0]], t.points[tri.v[1]], t.points[tri.v[2]]

	d := 2 * (a.X*(b.Z-c.Z) + b.X*(c.Z-a.Z) + c.X*(a.Z-b.Z))
	if math.Abs(d) < degenerateEpsilon {
		tri.degenerate = true
		t.degen++
		slog.Debug("Skipping degenerate triangle",
			"a", tri.v[0],
			"b", tri.v[1],
			"c", tri.v[2])
		return
	}

	a2 := a.X*a.X + a.Z*a.Z
	b2 := b.X*b.X + b.Z*b.Z
	c2 := c.X*c.X + c.Z*c.Z
	tri.center = dungeon.Vec2{
		X: (a2*(b.Z-c.Z) + b2*(c.Z-a.Z) + c2*(a.Z-b.Z)) / d,
		Z: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
	dx := a.X - tri.center.X
	dz := a.Z - tri.center.Z
	tri.radiusSq = dx*dx + dz*dz
}

func (t *triangulator) result(rooms []dungeon.Room) *Result {
	// surviving triangles that were never tested still count when degenerate
	for _, tri := range t.triangles {
		if !tri.cached {
			t.cacheCircumcircle(tri)
		}
	}

	type surviving struct {
		key edgeKey
		seq int
	}
	live := make([]surviving, 0, len(t.registry))
	for k, e := range t.registry {
		live = append(live, surviving{key: k, seq: e.seq})
	}
	sort.Slice(live, func(i, j int) bool { return live[i].seq < live[j].seq })

	res := &Result{
		Edges:      make([]dungeon.CandidateEdge, 0, len(live)),
		Triangles:  make([][3]int, 0, len(t.triangles)),
		Degenerate: t.degen,
	}
	for i, e := range live {
		res.Edges = append(res.Edges, newCandidate(rooms, e.key.a, e.key.b, i))
	}
	for _, tri := range t.triangles {
		res.Triangles = append(res.Triangles, [3]int{
			rooms[tri.v[0]].ID,
			rooms[tri.v[1]].ID,
			rooms[tri.v[2]].ID,
		})
	}
	return res
}

// chain links rooms in order along their common line
func chain(rooms []dungeon.Room) *Result {
	order := make([]int, len(rooms))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := rooms[order[i]].Center(), rooms[order[j]].Center()
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Z < b.Z
	})

	res := &Result{Edges: make([]dungeon.CandidateEdge, 0, len(rooms)-1)}
	for i := 1; i < len(order); i++ {
		res.Edges = append(res.Edges, newCandidate(rooms, order[i-1], order[i], i-1))
	}
	return res
}

func newCandidate(rooms []dungeon.Room, i, j, seq int) dungeon.CandidateEdge {
	a, b := rooms[i], rooms[j]
	if a.ID > b.ID {
		a, b = b, a
	}
	return dungeon.CandidateEdge{
		A:      a.ID,
		B:      b.ID,
		Length: a.Center().DistanceTo(b.Center()),
		Seq:    seq,
	}
}
