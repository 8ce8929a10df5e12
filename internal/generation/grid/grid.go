// Package grid owns the tile map of a dungeon and derives walls from it.
package grid

import (
	"strings"

	"github.com/katalvlaran/lvlath/gridgraph"
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Grid is a fixed rows x cols tile map. Not safe for concurrent use.
type Grid struct {
	rows   int
	cols   int
	tiles  []dungeon.TileState
	exempt []bool
}

// New allocates an all-Empty grid
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.InvalidDimensionsf("map must be at least 1x1, got %dx%d", rows, cols).
			WithMeta("rows", rows).
			WithMeta("cols", cols)
	}

	return &Grid{
		rows:   rows,
		cols:   cols,
		tiles:  make([]dungeon.TileState, rows*cols),
		exempt: make([]bool, rows*cols),
	}, nil
}

// FromLayout rebuilds a grid from a stored layout, hub reservation included
func FromLayout(layout *dungeon.Layout) (*Grid, error) {
	if layout == nil {
		return nil, errors.InvalidArgument("layout is required")
	}
	g, err := New(layout.Rows, layout.Cols)
	if err != nil {
		return nil, err
	}
	if len(layout.Tiles) != len(g.tiles) {
		return nil, errors.InvalidArgumentf("layout has %d tiles, expected %d", len(layout.Tiles), len(g.tiles))
	}
	copy(g.tiles, layout.Tiles)
	for _, c := range layout.Hub {
		if err := g.SetExempt(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// Reset returns every tile to Empty and clears exemptions
func (g *Grid) Reset() {
	for i := range g.tiles {
		g.tiles[i] = dungeon.TileEmpty
		g.exempt[i] = false
	}
}

// InBounds reports whether c addresses a tile of this grid
func (g *Grid) InBounds(c dungeon.Coord) bool {
	return c.X >= 0 && c.X < g.rows && c.Z >= 0 && c.Z < g.cols
}

func (g *Grid) index(c dungeon.Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, errors.OutOfBoundsf("coord %s outside %dx%d map", c, g.rows, g.cols).
			WithMeta("x", c.X).
			WithMeta("z", c.Z)
	}
	return c.X*g.cols + c.Z, nil
}

// Get returns the state of c
func (g *Grid) Get(c dungeon.Coord) (dungeon.TileState, error) {
	i, err := g.index(c)
	if err != nil {
		return dungeon.TileEmpty, err
	}
	return g.tiles[i], nil
}

// Set overwrites the state of c
func (g *Grid) Set(c dungeon.Coord, state dungeon.TileState) error {
	i, err := g.index(c)
	if err != nil {
		return err
	}
	g.tiles[i] = state
	return nil
}

// SetExempt reserves c for the hub. Exempt tiles never become Wall or Corridor.
func (g *Grid) SetExempt(c dungeon.Coord) error {
	i, err := g.index(c)
	if err != nil {
		return err
	}
	g.exempt[i] = true
	return nil
}

// IsExempt reports whether c is reserved. Out of bounds is never exempt.
func (g *Grid) IsExempt(c dungeon.Coord) bool {
	i, err := g.index(c)
	if err != nil {
		return false
	}
	return g.exempt[i]
}

// ExemptTiles returns the reserved coordinates in row-major order
func (g *Grid) ExemptTiles() []dungeon.Coord {
	var out []dungeon.Coord
	for i, ex := range g.exempt {
		if ex {
			out = append(out, dungeon.Coord{X: i / g.cols, Z: i % g.cols})
		}
	}
	return out
}

// MarkCorridor turns an Empty tile into Corridor. It reports false without
// changes for tiles that are already Corridor or exempt, and fails with
// TileConflict on Room or Wall.
func (g *Grid) MarkCorridor(c dungeon.Coord) (bool, error) {
	i, err := g.index(c)
	if err != nil {
		return false, err
	}
	if g.exempt[i] {
		return false, nil
	}
	switch g.tiles[i] {
	case dungeon.TileEmpty:
		g.tiles[i] = dungeon.TileCorridor
		return true, nil
	case dungeon.TileCorridor:
		return false, nil
	default:
		return false, errors.TileConflictf("cannot carve corridor over %s at %s", g.tiles[i], c).
			WithMeta("x", c.X).
			WithMeta("z", c.Z)
	}
}

// walkable is true for floor tiles and for the hub, which is floor that is
// never carved or walled
func (g *Grid) walkable(i int) bool {
	return g.tiles[i].IsOccupied() || g.exempt[i]
}

// hasOccupiedNeighbor checks the Moore neighborhood of c
func (g *Grid) hasOccupiedNeighbor(c dungeon.Coord) bool {
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			n := c.Add(dx, dz)
			if g.InBounds(n) && g.walkable(n.X*g.cols+n.Z) {
				return true
			}
		}
	}
	return false
}

// ClassifyWalls promotes every non-exempt Empty tile with an occupied or hub
// Moore neighbor to Wall and returns how many tiles changed. Walls are not
// occupied, so a second call changes nothing.
func (g *Grid) ClassifyWalls() int {
	promoted := 0
	for x := 0; x < g.rows; x++ {
		for z := 0; z < g.cols; z++ {
			i := x*g.cols + z
			if g.tiles[i] != dungeon.TileEmpty || g.exempt[i] {
				continue
			}
			if g.hasOccupiedNeighbor(dungeon.Coord{X: x, Z: z}) {
				g.tiles[i] = dungeon.TileWall
				promoted++
			}
		}
	}
	return promoted
}

type wallSegment struct {
	coord  dungeon.Coord
	facing dungeon.Direction
}

// WallDescriptors lists every Wall tile in row-major order with the cardinal
// directions in which it faces floor or hub. A (tile, direction) pair is
// emitted once.
func (g *Grid) WallDescriptors() []dungeon.WallDescriptor {
	seen := mapset.New[wallSegment]()
	var out []dungeon.WallDescriptor

	for x := 0; x < g.rows; x++ {
		for z := 0; z < g.cols; z++ {
			c := dungeon.Coord{X: x, Z: z}
			if g.tiles[x*g.cols+z] != dungeon.TileWall {
				continue
			}

			desc := dungeon.WallDescriptor{Coord: c}
			for _, d := range dungeon.Directions {
				n := c.Add(d.Offset())
				if !g.InBounds(n) || !g.walkable(n.X*g.cols+n.Z) {
					continue
				}
				seg := wallSegment{coord: c, facing: d}
				if seen.Has(seg) {
					continue
				}
				seen.Put(seg)
				desc.Facing = append(desc.Facing, d)
			}
			out = append(out, desc)
		}
	}
	return out
}

// FloorRegions counts 4-connected regions of Room, Corridor and hub tiles
// that hold at least one Room tile. A hub no corridor reaches is not counted.
func (g *Grid) FloorRegions() (int, error) {
	cells := make([][]int, g.rows)
	for x := range cells {
		cells[x] = make([]int, g.cols)
		for z := range cells[x] {
			if g.walkable(x*g.cols + z) {
				cells[x][z] = 1
			}
		}
	}

	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(cells, opts)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeInternal, "failed to build floor graph")
	}

	regions := 0
	for _, region := range gg.ConnectedComponents()[1] {
		for _, cell := range region {
			// cells are addressed by column (X) and row (Y)
			if g.tiles[cell.Y*g.cols+cell.X] == dungeon.TileRoom {
				regions++
				break
			}
		}
	}
	return regions, nil
}

// Snapshot returns a row-major copy of the tiles
func (g *Grid) Snapshot() []dungeon.TileState {
	out := make([]dungeon.TileState, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Bytes returns the tiles as one byte per tile, row-major
func (g *Grid) Bytes() []byte {
	out := make([]byte, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = byte(t)
	}
	return out
}

// Render draws the grid as ASCII, one line per row
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for x := 0; x < g.rows; x++ {
		for z := 0; z < g.cols; z++ {
			i := x*g.cols + z
			b.WriteByte(glyph(g.tiles[i], g.exempt[i]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyph(t dungeon.TileState, exempt bool) byte {
	if exempt && t == dungeon.TileEmpty {
		return 'H'
	}
	switch t {
	case dungeon.TileRoom:
		return 'R'
	case dungeon.TileCorridor:
		return '+'
	case dungeon.TileWall:
		return '#'
	default:
		return '.'
	}
}
