// Package rooms places non-overlapping rectangular rooms on a grid.
package rooms

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// Config holds the dependencies for a Placer
type Config struct {
	Grid    *grid.Grid
	Roller  dice.Roller
	MinSize int
	MaxSize int
	// MarginFactor scales the half-extents two rooms must keep apart.
	// Zero means dungeon.DefaultMarginFactor.
	MarginFactor float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Grid == nil {
		vb.RequiredField("Grid")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidateMin("MinSize", c.MinSize, 1, vb)
	if c.MaxSize < c.MinSize {
		vb.Fieldf("MaxSize", "must be at least MinSize (%d)", c.MinSize)
	}
	if c.MarginFactor < 0 {
		vb.InvalidField("MarginFactor", "must not be negative")
	}

	return vb.Build()
}

// Placer samples room footprints and commits the accepted ones to the grid
type Placer struct {
	grid    *grid.Grid
	roller  dice.Roller
	minSize int
	maxSize int
	margin  float64
	rooms   []dungeon.Room
}

// NewPlacer creates a placer over an existing grid
func NewPlacer(cfg *Config) (*Placer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	margin := cfg.MarginFactor
	if margin == 0 {
		margin = dungeon.DefaultMarginFactor
	}

	return &Placer{
		grid:    cfg.Grid,
		roller:  cfg.Roller,
		minSize: cfg.MinSize,
		maxSize: cfg.MaxSize,
		margin:  margin,
	}, nil
}

// Rooms returns the rooms placed so far, in id order
func (p *Placer) Rooms() []dungeon.Room {
	out := make([]dungeon.Room, len(p.rooms))
	copy(out, p.rooms)
	return out
}

// DefaultAttemptBudget scales with both the requested room count and the map area
func DefaultAttemptBudget(target, rows, cols int) int {
	budget := target * target
	if area := rows * cols; area > budget {
		budget = area
	}
	return budget
}

// TryPlaceRoom draws up to attemptBudget candidates and places the first that
// fits. Draw order per attempt is width, depth, origin row, origin column.
func (p *Placer) TryPlaceRoom(attemptBudget int) (*dungeon.Room, error) {
	if attemptBudget <= 0 {
		return nil, errors.InvalidArgumentf("attempt budget must be positive, got %d", attemptBudget)
	}

	for attempt := 0; attempt < attemptBudget; attempt++ {
		candidate, ok, err := p.draw()
		if err != nil {
			return nil, err
		}
		if !ok || !p.accepts(candidate) {
			continue
		}

		candidate.ID = len(p.rooms)
		for _, c := range candidate.Tiles() {
			if err := p.grid.Set(c, dungeon.TileRoom); err != nil {
				return nil, errors.Wrap(err, "failed to mark room footprint")
			}
		}
		p.rooms = append(p.rooms, candidate)

		slog.Debug("Placed room",
			"room_id", candidate.ID,
			"origin", candidate.Origin.String(),
			"width", candidate.Width,
			"depth", candidate.Depth,
			"attempts", attempt+1)

		return &candidate, nil
	}

	return nil, errors.RoomPlacementExhaustedf("no room fit after %d attempts", attemptBudget).
		WithMeta("attempts", attemptBudget).
		WithMeta("rooms_placed", len(p.rooms))
}

// PlaceRooms places rooms until target is reached or one request exhausts
// its budget. The rooms placed so far are returned with the exhaustion error.
func (p *Placer) PlaceRooms(target, attemptBudget int) ([]dungeon.Room, error) {
	for len(p.rooms) < target {
		if _, err := p.TryPlaceRoom(attemptBudget); err != nil {
			return p.Rooms(), err
		}
	}
	return p.Rooms(), nil
}

// draw samples one candidate. ok is false when the footprint cannot fit the map.
func (p *Placer) draw() (dungeon.Room, bool, error) {
	width, err := rng.Between(p.roller, p.minSize, p.maxSize)
	if err != nil {
		return dungeon.Room{}, false, err
	}
	depth, err := rng.Between(p.roller, p.minSize, p.maxSize)
	if err != nil {
		return dungeon.Room{}, false, err
	}
	if width > p.grid.Rows() || depth > p.grid.Cols() {
		return dungeon.Room{}, false, nil
	}

	x, err := rng.Between(p.roller, 0, p.grid.Rows()-width)
	if err != nil {
		return dungeon.Room{}, false, err
	}
	z, err := rng.Between(p.roller, 0, p.grid.Cols()-depth)
	if err != nil {
		return dungeon.Room{}, false, err
	}

	return dungeon.Room{Origin: dungeon.Coord{X: x, Z: z}, Width: width, Depth: depth}, true, nil
}

func (p *Placer) accepts(candidate dungeon.Room) bool {
	for _, placed := range p.rooms {
		if Conflicts(candidate, placed, p.margin) {
			return false
		}
	}

	// footprint must be free and neither it nor its ring may touch the hub
	for x := candidate.Origin.X - 1; x <= candidate.MaxX()+1; x++ {
		for z := candidate.Origin.Z - 1; z <= candidate.MaxZ()+1; z++ {
			c := dungeon.Coord{X: x, Z: z}
			if p.grid.IsExempt(c) {
				return false
			}
			if !candidate.Contains(c) {
				continue
			}
			if state, err := p.grid.Get(c); err != nil || state != dungeon.TileEmpty {
				return false
			}
		}
	}
	return true
}

// Conflicts reports whether two rooms are closer than their scaled
// half-extents on both axes.
func Conflicts(a, b dungeon.Room, factor float64) bool {
	ca, cb := a.Center(), b.Center()
	limitX := float64(a.Width+b.Width) / 2 * factor
	limitZ := float64(a.Depth+b.Depth) / 2 * factor
	return math.Abs(ca.X-cb.X) <= limitX && math.Abs(ca.Z-cb.Z) <= limitZ
}
