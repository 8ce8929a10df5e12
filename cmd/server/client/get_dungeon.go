package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var (
	dungeonID string
)

var getDungeonCmd = &cobra.Command{
	Use:   "get-dungeon",
	Short: "Get a stored dungeon by ID",
	Long:  `Retrieve a stored layout and list its rooms and corridors.`,
	RunE:  runGetDungeon,
}

func init() {
	getDungeonCmd.Flags().StringVar(&dungeonID, "dungeon-id", "", "Dungeon ID (required)")
	_ = getDungeonCmd.MarkFlagRequired("dungeon-id") // nolint:errcheck // safe to ignore in init
}

func runGetDungeon(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createDungeonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetDungeon(ctx, v1alpha1.DungeonIDToStruct(dungeonID))
	if err != nil {
		return fmt.Errorf("failed to get dungeon: %w", err)
	}

	layout, err := v1alpha1.LayoutFromStruct(resp.GetFields()[v1alpha1.FieldLayout].GetStructValue())
	if err != nil {
		return fmt.Errorf("failed to decode layout: %w", err)
	}

	fmt.Printf("Dungeon ID: %s\n", dungeonID)
	printLayout(layout)
	return nil
}
