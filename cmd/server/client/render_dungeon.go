package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

var renderDungeonCmd = &cobra.Command{
	Use:   "render-dungeon",
	Short: "Print a stored dungeon as ASCII",
	RunE:  runRenderDungeon,
}

func init() {
	renderDungeonCmd.Flags().StringVar(&dungeonID, "dungeon-id", "", "Dungeon ID (required)")
	_ = renderDungeonCmd.MarkFlagRequired("dungeon-id") // nolint:errcheck // safe to ignore in init
}

func runRenderDungeon(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createDungeonClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RenderDungeon(ctx, v1alpha1.DungeonIDToStruct(dungeonID))
	if err != nil {
		return fmt.Errorf("failed to render dungeon: %w", err)
	}

	fmt.Print(resp.GetFields()[v1alpha1.FieldASCII].GetStringValue())
	return nil
}
