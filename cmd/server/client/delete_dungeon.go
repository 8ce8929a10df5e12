package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var deleteDungeonCmd = &cobra.Command{
	Use:   "delete-dungeon",
	Short: "Delete a stored dungeon",
	RunE:  runDeleteDungeon,
}

func init() {
	deleteDungeonCmd.Flags().StringVar(&dungeonID, "dungeon-id", "", "Dungeon ID (required)")
	_ = deleteDungeonCmd.MarkFlagRequired("dungeon-id") // nolint:errcheck // safe to ignore in init
}

func runDeleteDungeon(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createDungeonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DeleteDungeon(ctx, v1alpha1.DungeonIDToStruct(dungeonID))
	if err != nil {
		return fmt.Errorf("failed to delete dungeon: %w", err)
	}

	if resp.GetFields()[v1alpha1.FieldDeleted].GetBoolValue() {
		fmt.Printf("Deleted dungeon %s\n", dungeonID)
	} else {
		fmt.Printf("Dungeon %s was not stored\n", dungeonID)
	}
	return nil
}
