package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tablero-app/bitacora/internal/cli/formatter"
	"github.com/tablero-app/bitacora/internal/domain"
)

func newBitacoraCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Manage bitácoras (progression tracks)",
	}

	cmd.AddCommand(
		newBitacoraAddCmd(app),
		newBitacoraListCmd(app),
	)

	return cmd
}

func newBitacoraAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new bitácora",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Bitacora{Name: name}
			if err := app.Bitacoras.Create(context.Background(), b); err != nil {
				return err
			}
			fmt.Printf("Created bitácora %s (%s)\n", b.Name, formatter.TruncID(b.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Bitácora name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBitacoraListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bitácoras",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := app.Bitacoras.List(context.Background())
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println("No bitácoras found.")
				return nil
			}

			rows := make([][]string, 0, len(all))
			for _, b := range all {
				rows = append(rows, []string{formatter.TruncID(b.ID), b.Name, formatter.HumanDate(b.CreatedAt)})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "CREATED"}, rows))
			return nil
		},
	}
}
