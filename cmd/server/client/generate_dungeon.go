package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	entities "github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var genParams entities.Params

var generateDungeonCmd = &cobra.Command{
	Use:   "generate-dungeon",
	Short: "Generate and store a dungeon on the server",
	Long:  `Ask the server to generate a layout. The returned dungeon id can be used with get-dungeon and render-dungeon.`,
	RunE:  runGenerateDungeon,
}

func init() {
	flags := generateDungeonCmd.Flags()
	flags.IntVar(&genParams.Rows, "rows", 20, "Map rows")
	flags.IntVar(&genParams.Cols, "cols", 20, "Map columns")
	flags.IntVar(&genParams.MinRoomSize, "min-room", 3, "Minimum room side")
	flags.IntVar(&genParams.MaxRoomSize, "max-room", 5, "Maximum room side")
	flags.IntVar(&genParams.TargetRoomCount, "rooms", 4, "Target room count")
	flags.IntVar(&genParams.EntryPoint.X, "entry-x", 2, "Entry point row")
	flags.IntVar(&genParams.EntryPoint.Z, "entry-z", 10, "Entry point column")
	flags.Int64Var(&genParams.Seed, "seed", 42, "Random seed")
	flags.IntVar(&genParams.HubSize, "hub", 0, "Side of the open hub square around the entry point")
}

func runGenerateDungeon(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createDungeonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.ParamsToStruct(genParams)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.GenerateDungeon(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate dungeon: %w", err)
	}

	layout, err := v1alpha1.LayoutFromStruct(resp.GetFields()[v1alpha1.FieldLayout].GetStructValue())
	if err != nil {
		return fmt.Errorf("failed to decode layout: %w", err)
	}

	fmt.Printf("Dungeon ID: %s\n", resp.GetFields()[v1alpha1.FieldDungeonID].GetStringValue())
	printLayout(layout)
	return nil
}

func printLayout(layout *entities.Layout) {
	fmt.Printf("Size: %dx%d (seed %d)\n", layout.Rows, layout.Cols, layout.Params.Seed)
	fmt.Printf("Rooms: %d of %d\n", layout.Summary.RoomsPlaced, layout.Summary.RoomsRequested)
	for _, room := range layout.Rooms {
		fmt.Printf("  - %s at %s, %dx%d\n", room.GetID(), room.Origin, room.Width, room.Depth)
	}
	fmt.Printf("Corridors: %d carved, %d aborted\n", layout.Summary.CorridorsCarved, layout.Summary.CorridorsAborted)
	for _, corridor := range layout.Corridors {
		fmt.Printf("  - room_%d -> room_%d, %d tiles\n", corridor.From, corridor.To, len(corridor.Path))
	}
	fmt.Printf("Walls: %d\n", len(layout.Walls))
	fmt.Printf("Floor regions: %d\n", layout.Summary.FloorRegions)
	if !layout.Summary.PartitionComplete {
		fmt.Printf("Unreached rooms: %v\n", layout.Summary.UnreachedRooms)
	}
}
