package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tablero-app/bitacora/internal/cli/formatter"
	"github.com/tablero-app/bitacora/internal/repository"
)

func newAvatarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Show and recompute bitácora avatars",
	}

	cmd.AddCommand(
		newAvatarShowCmd(app),
		newAvatarRecomputeCmd(app),
	)

	return cmd
}

func newAvatarShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show BITACORA",
		Short: "Show the avatar for a bitácora",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			bitacoraID, err := resolveBitacoraID(ctx, app, args[0])
			if err != nil {
				return err
			}
			bitacora, err := app.Bitacoras.GetByID(ctx, bitacoraID)
			if err != nil {
				return err
			}

			avatar, err := app.Avatars.GetByBitacora(ctx, bitacoraID)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Println("No activity recorded yet. Complete a task or log a session first.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAvatar(bitacora.Name, avatar, app.Ranks))
			return nil
		},
	}
}

func newAvatarRecomputeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recompute BITACORA",
		Short: "Rebuild the avatar from the full activity ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			bitacoraID, err := resolveBitacoraID(ctx, app, args[0])
			if err != nil {
				return err
			}
			avatar, err := app.Avatars.Recompute(ctx, bitacoraID)
			if err != nil {
				return err
			}
			fmt.Printf("Recomputed: nivel %d, %d XP, %s\n", avatar.Level, avatar.Experience, avatar.RankName)
			return nil
		},
	}
}
