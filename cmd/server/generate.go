package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	entities "github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/generation/pipeline"
)

var genParams entities.Params

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dungeon locally and print it",
	Long:  `Run the generation pipeline without a server and print the layout as ASCII with its summary.`,
	RunE:  runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.IntVar(&genParams.Rows, "rows", 20, "Map rows")
	flags.IntVar(&genParams.Cols, "cols", 20, "Map columns")
	flags.IntVar(&genParams.MinRoomSize, "min-room", 3, "Minimum room side")
	flags.IntVar(&genParams.MaxRoomSize, "max-room", 5, "Maximum room side")
	flags.IntVar(&genParams.TargetRoomCount, "rooms", 4, "Target room count")
	flags.IntVar(&genParams.EntryPoint.X, "entry-x", 2, "Entry point row")
	flags.IntVar(&genParams.EntryPoint.Z, "entry-z", 10, "Entry point column")
	flags.Int64Var(&genParams.Seed, "seed", 42, "Random seed")
	flags.IntVar(&genParams.HubSize, "hub", 0, "Side of the open hub square around the entry point")
	flags.Float64Var(&genParams.MarginFactor, "margin", entities.DefaultMarginFactor, "Room spacing factor")
	flags.IntVar(&genParams.AttemptBudget, "attempts", 0, "Placement attempts per room (0 derives from map size)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	layout, err := pipeline.Generate(context.Background(), genParams)
	if err != nil {
		return fmt.Errorf("failed to generate dungeon: %w", err)
	}

	g, err := grid.FromLayout(layout)
	if err != nil {
		return fmt.Errorf("failed to render dungeon: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, g.Render())
	printSummary(cmd, layout.Summary)
	return nil
}

func printSummary(cmd *cobra.Command, summary entities.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nRooms: %d of %d", summary.RoomsPlaced, summary.RoomsRequested)
	if summary.PlacementExhausted {
		fmt.Fprint(out, " (placement exhausted)")
	}
	fmt.Fprintf(out, "\nCandidate edges: %d (%d pruned)\n", summary.CandidateEdges, summary.EdgesPruned)
	fmt.Fprintf(out, "Corridors: %d carved, %d aborted\n", summary.CorridorsCarved, summary.CorridorsAborted)
	fmt.Fprintf(out, "Floor regions: %d\n", summary.FloorRegions)
	if summary.DegenerateTriangles > 0 {
		fmt.Fprintf(out, "Degenerate triangles: %d\n", summary.DegenerateTriangles)
	}
	if !summary.PartitionComplete {
		fmt.Fprintf(out, "Unreached rooms: %v\n", summary.UnreachedRooms)
	}
	fmt.Fprintf(out, "Entry room: %d\n", summary.EntryRoomID)
}
