// Package corridors rasterizes selected connections into one-tile-wide
// Manhattan paths between rooms.
package corridors

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
)

// Config holds the dependencies for a Carver
type Config struct {
	Grid *grid.Grid
	// Rooms indexed by id
	Rooms []dungeon.Room
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Grid == nil {
		vb.RequiredField("Grid")
	}
	for i, r := range c.Rooms {
		if r.ID != i {
			vb.Fieldf("Rooms", "room at index %d has id %d", i, r.ID)
			break
		}
	}

	return vb.Build()
}

// Carver turns corridors into Corridor tiles
type Carver struct {
	grid  *grid.Grid
	rooms []dungeon.Room
}

// NewCarver creates a carver over the grid the rooms were placed on
func NewCarver(cfg *Config) (*Carver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Carver{grid: cfg.Grid, rooms: cfg.Rooms}, nil
}

// route is one way of laying a corridor out
type route struct {
	anchor dungeon.Coord
	walk   []dungeon.Coord
}

// Plan computes the anchor and path of a corridor without touching the grid.
//
// Rooms sharing rows are joined by a straight run along Z, rooms sharing
// columns by a straight run along X. Otherwise the path leaves the lower-id
// room along X and turns along Z into the higher-id room. When that anchor
// lies inside a room the mirrored L is tried next, leaving along Z and
// turning along X. TileConflict is reported only when every anchor is on a
// Room tile.
//
// Tiles that are already Room or exempt are left out of the path, so an
// anchor on a hub tile is not part of Path.
func (c *Carver) Plan(corridor dungeon.Corridor) (*dungeon.Corridor, error) {
	a, b, err := c.endpoints(corridor)
	if err != nil {
		return nil, err
	}

	for _, r := range routes(a, b) {
		state, err := c.grid.Get(r.anchor)
		if err != nil {
			return nil, err
		}
		if state == dungeon.TileRoom {
			slog.Debug("Corridor anchor inside a room",
				"from", corridor.From,
				"to", corridor.To,
				"anchor", r.anchor.String())
			continue
		}
		return c.planRoute(corridor, r)
	}

	return nil, errors.TileConflictf("corridor %d-%d has no anchor outside a room", a.ID, b.ID).
		WithMeta("from", corridor.From).
		WithMeta("to", corridor.To)
}

func (c *Carver) planRoute(corridor dungeon.Corridor, r route) (*dungeon.Corridor, error) {
	planned := corridor
	planned.Anchor = r.anchor
	planned.Path = make([]dungeon.Coord, 0, len(r.walk))
	for _, t := range r.walk {
		state, err := c.grid.Get(t)
		if err != nil {
			return nil, err
		}
		if state == dungeon.TileRoom || c.grid.IsExempt(t) {
			continue
		}
		planned.Path = append(planned.Path, t)
	}
	return &planned, nil
}

// routes lists the layouts to try for a and b, preferred first
func routes(a, b dungeon.Room) []route {
	switch {
	case overlaps(a.Origin.X, a.MaxX(), b.Origin.X, b.MaxX()):
		row := sharedLine(a.Origin.X, a.MaxX(), b.Origin.X, b.MaxX())
		return []route{{
			anchor: dungeon.Coord{X: row, Z: gapMiddle(a.Origin.Z, a.MaxZ(), b.Origin.Z, b.MaxZ())},
			walk:   straightZ(row, a, b),
		}}
	case overlaps(a.Origin.Z, a.MaxZ(), b.Origin.Z, b.MaxZ()):
		col := sharedLine(a.Origin.Z, a.MaxZ(), b.Origin.Z, b.MaxZ())
		return []route{{
			anchor: dungeon.Coord{X: gapMiddle(a.Origin.X, a.MaxX(), b.Origin.X, b.MaxX()), Z: col},
			walk:   straightX(col, a, b),
		}}
	}

	alongX := dungeon.Coord{
		X: nearestInterior(b.Origin.X, b.MaxX(), a.Center().X),
		Z: nearestInterior(a.Origin.Z, a.MaxZ(), b.Center().Z),
	}
	alongZ := dungeon.Coord{
		X: nearestInterior(a.Origin.X, a.MaxX(), b.Center().X),
		Z: nearestInterior(b.Origin.Z, b.MaxZ(), a.Center().Z),
	}
	return []route{
		{anchor: alongX, walk: lShape(alongX, a, b)},
		{anchor: alongZ, walk: mirroredLShape(alongZ, a, b)},
	}
}

// Carve plans the corridor and commits it. A conflict anywhere on the path
// aborts the corridor before any tile changes.
func (c *Carver) Carve(corridor dungeon.Corridor) (*dungeon.Corridor, error) {
	planned, err := c.Plan(corridor)
	if err != nil {
		return nil, err
	}

	for _, t := range planned.Path {
		state, err := c.grid.Get(t)
		if err != nil {
			return nil, err
		}
		if state != dungeon.TileEmpty && state != dungeon.TileCorridor {
			return nil, errors.TileConflictf("corridor %d-%d crosses %s at %s", corridor.From, corridor.To, state, t).
				WithMeta("from", corridor.From).
				WithMeta("to", corridor.To)
		}
	}
	for _, t := range planned.Path {
		if _, err := c.grid.MarkCorridor(t); err != nil {
			return nil, errors.Wrap(err, "failed to mark corridor")
		}
	}
	return planned, nil
}

// CarveAll carves every corridor in order. A failing corridor is skipped and
// its error collected; the rest are still carved.
func (c *Carver) CarveAll(corridors []dungeon.Corridor) ([]dungeon.Corridor, []error) {
	carved := make([]dungeon.Corridor, 0, len(corridors))
	var failures []error
	for _, corridor := range corridors {
		planned, err := c.Carve(corridor)
		if err != nil {
			slog.Warn("Aborted corridor",
				"from", corridor.From,
				"to", corridor.To,
				"error", err)
			failures = append(failures, err)
			continue
		}
		carved = append(carved, *planned)
	}
	return carved, failures
}

// endpoints returns the corridor's rooms ordered by id
func (c *Carver) endpoints(corridor dungeon.Corridor) (dungeon.Room, dungeon.Room, error) {
	for _, id := range []int{corridor.From, corridor.To} {
		if id < 0 || id >= len(c.rooms) {
			return dungeon.Room{}, dungeon.Room{}, errors.InvalidArgumentf("corridor references unknown room %d", id)
		}
	}
	if corridor.From == corridor.To {
		return dungeon.Room{}, dungeon.Room{}, errors.InvalidArgumentf("corridor joins room %d to itself", corridor.From)
	}

	a, b := c.rooms[corridor.From], c.rooms[corridor.To]
	if a.ID > b.ID {
		a, b = b, a
	}
	return a, b, nil
}

func overlaps(aLo, aHi, bLo, bHi int) bool {
	return aLo <= bHi && bLo <= aHi
}

// interior drops the boundary lines of an extent. Extents narrower than
// three collapse onto their center line.
func interior(lo, hi int) (int, int) {
	if hi-lo+1 < 3 {
		mid := (lo + hi) / 2
		return mid, mid
	}
	return lo + 1, hi - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nearestInterior picks the interior line of [lo, hi] closest to target
func nearestInterior(lo, hi int, target float64) int {
	ilo, ihi := interior(lo, hi)
	return clamp(int(math.Floor(target)), ilo, ihi)
}

// sharedLine picks the middle of two overlapping extents, pulled inside both
// interiors when they intersect.
func sharedLine(aLo, aHi, bLo, bHi int) int {
	lo, hi := max(aLo, bLo), min(aHi, bHi)
	mid := (lo + hi) / 2

	aiLo, aiHi := interior(aLo, aHi)
	biLo, biHi := interior(bLo, bHi)
	iLo, iHi := max(lo, aiLo, biLo), min(hi, aiHi, biHi)
	if iLo <= iHi {
		return clamp(mid, iLo, iHi)
	}
	return mid
}

// gapMiddle is the middle line between two disjoint extents
func gapMiddle(aLo, aHi, bLo, bHi int) int {
	if aHi < bLo {
		return (aHi + 1 + bLo - 1) / 2
	}
	return (bHi + 1 + aLo - 1) / 2
}

// run lists the lines strictly between from and to, walking from from
func run(from, to int) []int {
	var out []int
	switch {
	case from < to:
		for v := from + 1; v < to; v++ {
			out = append(out, v)
		}
	case from > to:
		for v := from - 1; v > to; v-- {
			out = append(out, v)
		}
	}
	return out
}

// straightZ walks row from room a to room b along Z
func straightZ(row int, a, b dungeon.Room) []dungeon.Coord {
	var from, to int
	if a.MaxZ() < b.Origin.Z {
		from, to = a.MaxZ(), b.Origin.Z
	} else {
		from, to = a.Origin.Z, b.MaxZ()
	}
	var out []dungeon.Coord
	for _, z := range run(from, to) {
		out = append(out, dungeon.Coord{X: row, Z: z})
	}
	return out
}

// straightX walks col from room a to room b along X
func straightX(col int, a, b dungeon.Room) []dungeon.Coord {
	var from, to int
	if a.MaxX() < b.Origin.X {
		from, to = a.MaxX(), b.Origin.X
	} else {
		from, to = a.Origin.X, b.MaxX()
	}
	var out []dungeon.Coord
	for _, x := range run(from, to) {
		out = append(out, dungeon.Coord{X: x, Z: col})
	}
	return out
}

// lShape leaves a along X at the anchor column, then turns along Z into b
func lShape(anchor dungeon.Coord, a, b dungeon.Room) []dungeon.Coord {
	var out []dungeon.Coord

	exitRow := a.Origin.X
	if anchor.X > a.MaxX() {
		exitRow = a.MaxX()
	}
	for _, x := range run(exitRow, anchor.X) {
		out = append(out, dungeon.Coord{X: x, Z: anchor.Z})
	}
	out = append(out, anchor)

	entryCol := b.MaxZ()
	if anchor.Z < b.Origin.Z {
		entryCol = b.Origin.Z
	}
	for _, z := range run(anchor.Z, entryCol) {
		out = append(out, dungeon.Coord{X: anchor.X, Z: z})
	}
	return out
}

// mirroredLShape leaves a along Z at the anchor row, then turns along X into b
func mirroredLShape(anchor dungeon.Coord, a, b dungeon.Room) []dungeon.Coord {
	var out []dungeon.Coord

	exitCol := a.Origin.Z
	if anchor.Z > a.MaxZ() {
		exitCol = a.MaxZ()
	}
	for _, z := range run(exitCol, anchor.Z) {
		out = append(out, dungeon.Coord{X: anchor.X, Z: z})
	}
	out = append(out, anchor)

	entryRow := b.MaxX()
	if anchor.X < b.Origin.X {
		entryRow = b.Origin.X
	}
	for _, x := range run(anchor.X, entryRow) {
		out = append(out, dungeon.Coord{X: x, Z: anchor.Z})
	}
	return out
}
