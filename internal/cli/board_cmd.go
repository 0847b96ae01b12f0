package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tablero-app/bitacora/internal/cli/formatter"
	"github.com/tablero-app/bitacora/internal/domain"
)

func newBoardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage task boards",
	}

	cmd.AddCommand(
		newBoardAddCmd(app),
		newBoardListCmd(app),
		newBoardLinkCmd(app),
	)

	return cmd
}

func newBoardAddCmd(app *App) *cobra.Command {
	var name, track string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			b := &domain.Board{Name: name}
			if track != "" {
				bitacoraID, err := resolveBitacoraID(ctx, app, track)
				if err != nil {
					return err
				}
				b.BitacoraID = &bitacoraID
			}
			if err := app.Boards.Create(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Created board %s (%s)\n", b.Name, formatter.TruncID(b.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Board name")
	cmd.Flags().StringVar(&track, "track", "", "Bitácora to link (name, ID, or prefix)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBoardListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := app.Boards.List(context.Background())
			if err != nil {
				return err
			}
			if len(boards) == 0 {
				fmt.Println("No boards found.")
				return nil
			}

			rows := make([][]string, 0, len(boards))
			for _, b := range boards {
				linked := formatter.Dim("-")
				if b.BitacoraID != nil {
					linked = formatter.TruncID(*b.BitacoraID)
				}
				rows = append(rows, []string{formatter.TruncID(b.ID), b.Name, linked})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "BITÁCORA"}, rows))
			return nil
		},
	}
}

func newBoardLinkCmd(app *App) *cobra.Command {
	var track string

	cmd := &cobra.Command{
		Use:   "link BOARD",
		Short: "Link a board to a bitácora",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			boardID, err := resolveBoardID(ctx, app, args[0])
			if err != nil {
				return err
			}
			bitacoraID, err := resolveBitacoraID(ctx, app, track)
			if err != nil {
				return err
			}
			if err := app.Boards.LinkBitacora(ctx, boardID, bitacoraID); err != nil {
				return err
			}
			fmt.Printf("Linked board %s to bitácora %s\n", formatter.TruncID(boardID), formatter.TruncID(bitacoraID))
			return nil
		},
	}

	cmd.Flags().StringVar(&track, "track", "", "Bitácora (name, ID, or prefix)")
	_ = cmd.MarkFlagRequired("track")

	return cmd
}
