// Package errors provides structured error handling for rpg-dungeon.
//
// Errors carry a gRPC-aligned Code, an optional Reason from the dungeon
// generation taxonomy, a user-facing message and metadata.
//
// # Basic Usage
//
//	err := errors.NotFound("dungeon not found")
//	err := errors.InvalidArgumentf("invalid room count: %d", n)
//
// Adding metadata:
//
//	err := errors.NotFound("dungeon not found").
//	    WithMeta("dungeon_id", id)
//
// Wrapping keeps the code and reason of the cause:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store layout")
//	}
//
// # Generation Reasons
//
// Each reason is bound to a code (see Reason.Code):
//
//	InvalidDimensions       INVALID_ARGUMENT     fatal
//	RoomPlacementExhausted  RESOURCE_EXHAUSTED   recoverable
//	DegenerateGeometry      FAILED_PRECONDITION  recoverable
//	IncompletePartition     FAILED_PRECONDITION  recoverable
//	TileConflict            ABORTED              aborts one corridor
//	OutOfBounds             OUT_OF_RANGE         fatal
//
// Checking:
//
//	if errors.HasReason(err, errors.ReasonRoomPlacementExhausted) {
//	    // continue with fewer rooms
//	}
//	if errors.IsFatal(err) {
//	    return err
//	}
//
// errors.Is matches on code, and on reason when the target has one.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateMin("rows", params.Rows, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err); clients recover the code, reason
// and metadata with errors.FromGRPCError(err).
package errors
