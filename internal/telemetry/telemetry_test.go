package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dungeon/internal/telemetry"
)

func TestTracerStartsSpan(t *testing.T) {
	ctx, span := telemetry.Tracer("pipeline").Start(context.Background(), "dungeon.test")
	defer span.End()

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}
