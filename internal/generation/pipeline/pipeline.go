// Package pipeline sequences the generation phases and assembles the
// finished layout. A Sequencer can be driven one phase at a time with Step
// or to completion with Run; both produce the same layout for the same seed.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/corridors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/delaunay"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/rooms"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/spanning"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/telemetry"
)

// Option customizes a Sequencer
type Option func(*Sequencer)

// WithRoller replaces the seeded roller built from Params.Seed
func WithRoller(r dice.Roller) Option {
	return func(s *Sequencer) {
		s.roller = r
	}
}

// WithTracer replaces the global tracer
func WithTracer(t trace.Tracer) Option {
	return func(s *Sequencer) {
		s.tracer = t
	}
}

// Sequencer owns one generation run. Not safe for concurrent use.
type Sequencer struct {
	params dungeon.Params
	phase  Phase
	err    error

	grid   *grid.Grid
	roller dice.Roller
	tracer trace.Tracer
	budget int
	margin float64

	hub        []dungeon.Coord
	rooms      []dungeon.Room
	candidates []dungeon.CandidateEdge
	selected   []dungeon.Corridor
	corridors  []dungeon.Corridor
	walls      []dungeon.WallDescriptor
	summary    dungeon.Summary
}

// ValidateParams checks generation inputs. Bad map dimensions are reported
// as InvalidDimensions and an entry point off the map as OutOfBounds.
func ValidateParams(params dungeon.Params) error {
	if params.Rows <= 0 || params.Cols <= 0 {
		return errors.InvalidDimensionsf("map must be at least 1x1, got %dx%d", params.Rows, params.Cols).
			WithMeta("rows", params.Rows).
			WithMeta("cols", params.Cols)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("min_room_size", params.MinRoomSize, 1, vb)
	if params.MaxRoomSize < params.MinRoomSize {
		vb.Fieldf("max_room_size", "must be at least min_room_size (%d)", params.MinRoomSize)
	}
	errors.ValidateMin("target_room_count", params.TargetRoomCount, 1, vb)
	errors.ValidateMin("attempt_budget", params.AttemptBudget, 0, vb)
	errors.ValidateMin("hub_size", params.HubSize, 0, vb)
	if params.MarginFactor < 0 {
		vb.InvalidField("margin_factor", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	entry := params.EntryPoint
	if entry.X < 0 || entry.X >= params.Rows || entry.Z < 0 || entry.Z >= params.Cols {
		return errors.OutOfBoundsf("entry point %s outside %dx%d map", entry, params.Rows, params.Cols)
	}
	return nil
}

// NewSequencer validates params and prepares an empty grid
func NewSequencer(params dungeon.Params, opts ...Option) (*Sequencer, error) {
	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	g, err := grid.New(params.Rows, params.Cols)
	if err != nil {
		return nil, err
	}

	s := &Sequencer{
		params: params,
		phase:  PhasePlacingRooms,
		grid:   g,
		budget: params.AttemptBudget,
		margin: params.MarginFactor,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.roller == nil {
		s.roller = rng.NewSeeded(params.Seed)
	}
	if s.tracer == nil {
		s.tracer = telemetry.Tracer("pipeline")
	}
	if s.budget == 0 {
		s.budget = rooms.DefaultAttemptBudget(params.TargetRoomCount, params.Rows, params.Cols)
	}
	if s.margin == 0 {
		s.margin = dungeon.DefaultMarginFactor
	}

	s.hub, err = rooms.ReserveHub(g, params.EntryPoint, params.HubSize)
	if err != nil {
		return nil, err
	}

	s.summary = dungeon.Summary{
		RoomsRequested: params.TargetRoomCount,
		EntryRoomID:    -1,
	}
	return s, nil
}

// Phase returns the phase the next Step will run
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Step runs exactly the current phase and returns the next one. Recoverable
// problems are folded into the summary; anything else stops the sequencer
// and is returned from every later Step.
func (s *Sequencer) Step(ctx context.Context) (Phase, error) {
	if s.err != nil {
		return s.phase, s.err
	}
	if s.phase == PhaseDone {
		return s.phase, nil
	}
	if err := ctx.Err(); err != nil {
		return s.phase, errors.WrapWithCode(err, errors.CodeCanceled, "generation canceled")
	}

	ctx, span := s.tracer.Start(ctx, "dungeon."+s.phase.String(),
		trace.WithAttributes(
			attribute.Int("dungeon.rows", s.params.Rows),
			attribute.Int("dungeon.cols", s.params.Cols),
			attribute.Int64("dungeon.seed", s.params.Seed),
		))
	defer span.End()

	var err error
	switch s.phase {
	case PhasePlacingRooms:
		err = s.placeRooms()
	case PhaseTriangulating:
		err = s.triangulate(ctx)
	case PhaseBuildingMST:
		err = s.buildTree()
	case PhaseCarving:
		err = s.carve()
	case PhaseClassifyingWalls:
		err = s.classifyWalls()
	}

	span.SetAttributes(
		attribute.Int("dungeon.rooms_placed", s.summary.RoomsPlaced),
		attribute.Int("dungeon.candidate_edges", s.summary.CandidateEdges),
		attribute.Int("dungeon.corridors_carved", s.summary.CorridorsCarved),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.err = err
		slog.Error("Dungeon generation failed",
			"phase", s.phase.String(),
			"seed", s.params.Seed,
			"error", err)
		return s.phase, err
	}

	s.phase++
	return s.phase, nil
}

// Run steps until every phase has completed
func (s *Sequencer) Run(ctx context.Context) (*dungeon.Layout, error) {
	for s.phase != PhaseDone {
		if _, err := s.Step(ctx); err != nil {
			return nil, err
		}
	}

	slog.Info("Generated dungeon",
		"seed", s.params.Seed,
		"rooms_requested", s.summary.RoomsRequested,
		"rooms_placed", s.summary.RoomsPlaced,
		"corridors_carved", s.summary.CorridorsCarved,
		"partition_complete", s.summary.PartitionComplete,
		"floor_regions", s.summary.FloorRegions)

	return s.Layout()
}

// Layout returns the finished layout. It fails with FailedPrecondition until
// every phase has run.
func (s *Sequencer) Layout() (*dungeon.Layout, error) {
	if s.phase != PhaseDone {
		return nil, errors.FailedPreconditionf("layout not ready, next phase is %s", s.phase)
	}

	summary := s.summary
	summary.UnreachedRooms = append([]int(nil), s.summary.UnreachedRooms...)

	return &dungeon.Layout{
		Params:     s.params,
		Rows:       s.grid.Rows(),
		Cols:       s.grid.Cols(),
		Tiles:      s.grid.Snapshot(),
		Hub:        append([]dungeon.Coord(nil), s.hub...),
		Rooms:      append([]dungeon.Room(nil), s.rooms...),
		Candidates: append([]dungeon.CandidateEdge(nil), s.candidates...),
		Corridors:  append([]dungeon.Corridor(nil), s.corridors...),
		Walls:      append([]dungeon.WallDescriptor(nil), s.walls...),
		Summary:    summary,
	}, nil
}

// Generate runs a fresh sequencer to completion
func Generate(ctx context.Context, params dungeon.Params, opts ...Option) (*dungeon.Layout, error) {
	s, err := NewSequencer(params, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx)
}

func (s *Sequencer) placeRooms() error {
	placer, err := rooms.NewPlacer(&rooms.Config{
		Grid:         s.grid,
		Roller:       s.roller,
		MinSize:      s.params.MinRoomSize,
		MaxSize:      s.params.MaxRoomSize,
		MarginFactor: s.margin,
	})
	if err != nil {
		return err
	}

	placed, err := placer.PlaceRooms(s.params.TargetRoomCount, s.budget)
	s.rooms = placed
	s.summary.RoomsPlaced = len(placed)
	s.summary.EntryRoomID = EntryRoomID(placed, s.params.EntryPoint)

	if errors.HasReason(err, errors.ReasonRoomPlacementExhausted) {
		s.summary.PlacementExhausted = true
		slog.Warn("Room placement exhausted",
			"rooms_requested", s.params.TargetRoomCount,
			"rooms_placed", len(placed),
			"attempt_budget", s.budget)
		return nil
	}
	return err
}

func (s *Sequencer) triangulate(ctx context.Context) error {
	res, err := delaunay.Triangulate(ctx, s.rooms, delaunay.Bounds{Rows: s.params.Rows, Cols: s.params.Cols})
	if err != nil && !errors.HasReason(err, errors.ReasonDegenerateGeometry) {
		return err
	}
	if err != nil {
		slog.Warn("Skipped degenerate geometry",
			"degenerate", res.Degenerate,
			"rooms", len(s.rooms))
	}

	s.candidates = res.Edges
	s.summary.CandidateEdges = len(res.Edges)
	s.summary.DegenerateTriangles = res.Degenerate
	return nil
}

func (s *Sequencer) buildTree() error {
	sel, err := spanning.Select(len(s.rooms), s.candidates)
	if err != nil && !errors.HasReason(err, errors.ReasonIncompletePartition) {
		return err
	}

	s.selected = sel.Corridors
	s.summary.CorridorsSelected = len(sel.Corridors)
	s.summary.EdgesPruned = sel.Pruned
	s.summary.PartitionComplete = err == nil
	s.summary.UnreachedRooms = sel.Unreached

	if err != nil {
		slog.Warn("Rooms left unconnected",
			"unreached", sel.Unreached,
			"rooms", len(s.rooms))
	}
	return nil
}

func (s *Sequencer) carve() error {
	carver, err := corridors.NewCarver(&corridors.Config{Grid: s.grid, Rooms: s.rooms})
	if err != nil {
		return err
	}

	carved, failures := carver.CarveAll(s.selected)
	for _, failure := range failures {
		if errors.IsFatal(failure) {
			return failure
		}
	}

	s.corridors = carved
	s.summary.CorridorsCarved = len(carved)
	s.summary.CorridorsAborted = len(failures)
	return nil
}

func (s *Sequencer) classifyWalls() error {
	promoted := s.grid.ClassifyWalls()
	s.walls = s.grid.WallDescriptors()
	slog.Debug("Classified walls",
		"promoted", promoted,
		"descriptors", len(s.walls))

	regions, err := s.grid.FloorRegions()
	if err != nil {
		return err
	}
	s.summary.FloorRegions = regions
	if regions > 1 {
		slog.Warn("Floor is split into separate regions",
			"regions", regions,
			"corridors_aborted", s.summary.CorridorsAborted)
	}
	return nil
}

// EntryRoomID returns the room whose center is nearest the middle of the
// entry tile, preferring the lowest id on ties, or -1 without rooms.
func EntryRoomID(placed []dungeon.Room, entry dungeon.Coord) int {
	target := dungeon.Vec2{X: float64(entry.X) + 0.5, Z: float64(entry.Z) + 0.5}
	best, bestDist := -1, 0.0
	for _, r := range placed {
		d := r.Center().DistanceTo(target)
		if best < 0 || d < bestDist {
			best, bestDist = r.ID, d
		}
	}
	return best
}
