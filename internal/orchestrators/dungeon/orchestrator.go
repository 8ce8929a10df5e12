// Package dungeon implements the orchestrator that generates, stores and
// renders dungeon layouts
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/pipeline"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeons"
)

// Service defines the interface for dungeon operations
type Service interface {
	// GenerateDungeon runs the generation pipeline and stores the layout
	GenerateDungeon(ctx context.Context, input *GenerateDungeonInput) (*GenerateDungeonOutput, error)

	// GetDungeon returns a stored layout
	GetDungeon(ctx context.Context, input *GetDungeonInput) (*GetDungeonOutput, error)

	// DeleteDungeon removes a stored layout
	DeleteDungeon(ctx context.Context, input *DeleteDungeonInput) (*DeleteDungeonOutput, error)

	// RenderDungeon draws a stored layout as ASCII
	RenderDungeon(ctx context.Context, input *RenderDungeonInput) (*RenderDungeonOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	Repository  dungeons.Repository
	IDGenerator idgen.Generator

	// TTL for stored layouts, zero uses the repository default
	TTL time.Duration

	// PipelineOptions are passed to every generation run
	PipelineOptions []pipeline.Option
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	repo        dungeons.Repository
	idGen       idgen.Generator
	ttl         time.Duration
	pipelineOpt []pipeline.Option
}

// NewOrchestrator creates a new dungeon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:        cfg.Repository,
		idGen:       cfg.IDGenerator,
		ttl:         cfg.TTL,
		pipelineOpt: cfg.PipelineOptions,
	}, nil
}

// GenerateDungeon runs the generation pipeline and stores the layout
func (o *orchestrator) GenerateDungeon(ctx context.Context, input *GenerateDungeonInput) (*GenerateDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	layout, err := pipeline.Generate(ctx, input.Params, o.pipelineOpt...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate dungeon")
	}

	id := o.idGen.Generate()
	if _, err := o.repo.Save(ctx, dungeons.SaveInput{
		ID:     id,
		Layout: layout,
		TTL:    o.ttl,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save dungeon")
	}

	summary := layout.Summary
	slog.Info("Dungeon generated",
		"dungeon_id", id,
		"seed", input.Params.Seed,
		"rooms_requested", summary.RoomsRequested,
		"rooms_placed", summary.RoomsPlaced,
		"corridors_carved", summary.CorridorsCarved,
		"corridors_aborted", summary.CorridorsAborted,
		"partition_complete", summary.PartitionComplete,
	)

	return &GenerateDungeonOutput{
		ID:     id,
		Layout: layout,
	}, nil
}

// GetDungeon returns a stored layout
func (o *orchestrator) GetDungeon(ctx context.Context, input *GetDungeonInput) (*GetDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("dungeon ID is required")
	}

	out, err := o.repo.Get(ctx, dungeons.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get dungeon %s", input.ID)
	}

	return &GetDungeonOutput{Layout: out.Record.Layout}, nil
}

// DeleteDungeon removes a stored layout
func (o *orchestrator) DeleteDungeon(ctx context.Context, input *DeleteDungeonInput) (*DeleteDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("dungeon ID is required")
	}

	out, err := o.repo.Delete(ctx, dungeons.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete dungeon %s", input.ID)
	}

	slog.Info("Dungeon deleted", "dungeon_id", input.ID, "deleted", out.Deleted)

	return &DeleteDungeonOutput{Deleted: out.Deleted}, nil
}

// RenderDungeon draws a stored layout as ASCII
func (o *orchestrator) RenderDungeon(ctx context.Context, input *RenderDungeonInput) (*RenderDungeonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.GetDungeon(ctx, &GetDungeonInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	g, err := grid.FromLayout(got.Layout)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored layout is corrupt")
	}

	return &RenderDungeonOutput{
		ASCII:   g.Render(),
		Summary: got.Layout.Summary,
	}, nil
}
