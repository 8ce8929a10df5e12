// Package v1alpha1 handles the dungeon grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
)

// HandlerConfig holds dependencies for the dungeon handler
type HandlerConfig struct {
	DungeonService dungeon.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.DungeonService == nil {
		return errors.InvalidArgument("dungeon service is required")
	}
	return nil
}

// Handler implements the dungeon gRPC service
type Handler struct {
	UnimplementedDungeonServiceServer
	dungeonService dungeon.Service
}

// Ensure Handler implements DungeonServiceServer
var _ DungeonServiceServer = (*Handler)(nil)

// NewHandler creates a new dungeon handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		dungeonService: cfg.DungeonService,
	}, nil
}

// GenerateDungeon generates and stores a new layout
func (h *Handler) GenerateDungeon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	params, err := ParamsFromStruct(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dungeonService.GenerateDungeon(ctx, &dungeon.GenerateDungeonInput{Params: params})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	layout, err := LayoutToStruct(out.Layout)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDungeonID: structpb.NewStringValue(out.ID),
		FieldLayout:    structpb.NewStructValue(layout),
	}}, nil
}

// GetDungeon returns a stored layout
func (h *Handler) GetDungeon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := DungeonIDFromStruct(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dungeonService.GetDungeon(ctx, &dungeon.GetDungeonInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	layout, err := LayoutToStruct(out.Layout)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDungeonID: structpb.NewStringValue(id),
		FieldLayout:    structpb.NewStructValue(layout),
	}}, nil
}

// DeleteDungeon removes a stored layout
func (h *Handler) DeleteDungeon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := DungeonIDFromStruct(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dungeonService.DeleteDungeon(ctx, &dungeon.DeleteDungeonInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDungeonID: structpb.NewStringValue(id),
		FieldDeleted:   structpb.NewBoolValue(out.Deleted),
	}}, nil
}

// RenderDungeon draws a stored layout as ASCII
func (h *Handler) RenderDungeon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := DungeonIDFromStruct(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.dungeonService.RenderDungeon(ctx, &dungeon.RenderDungeonInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	summary, err := toStruct(out.Summary)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDungeonID: structpb.NewStringValue(id),
		FieldASCII:     structpb.NewStringValue(out.ASCII),
		FieldSummary:   structpb.NewStructValue(summary),
	}}, nil
}
