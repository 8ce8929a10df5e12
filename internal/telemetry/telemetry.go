// Package telemetry hands out OpenTelemetry tracers scoped to this module.
package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationPrefix = "github.com/KirkDiggler/rpg-dungeon/"

// Tracer returns a tracer from the global provider. Without a configured
// provider spans are no-ops.
func Tracer(component string) trace.Tracer {
	return otel.Tracer(instrumentationPrefix + component)
}
