package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tablero-app/bitacora/internal/cli/formatter"
	"github.com/tablero-app/bitacora/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage board tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskCompleteCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var board, title, description, category string
	var difficulty int
	var economicValue float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			boardID, err := resolveBoardID(ctx, app, board)
			if err != nil {
				return err
			}

			t := &domain.Task{
				BoardID:     boardID,
				Title:       title,
				Description: description,
				Category:    category,
				Difficulty:  difficulty,
			}
			if cmd.Flags().Changed("value") {
				t.EconomicValue = &economicValue
			}
			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Created task %s (%s)\n", t.Title, formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&board, "board", "", "Board (name, ID, or prefix)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&category, "category", "", "Task category")
	cmd.Flags().IntVar(&difficulty, "difficulty", 3, "Difficulty 1-5")
	cmd.Flags().Float64Var(&economicValue, "value", 0, "Economic value")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			boardID, err := resolveBoardID(ctx, app, board)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByBoard(ctx, boardID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, formatter.FormatTaskRow(t))
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "TITLE", "STATUS", "DIFF", "IMPACT"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&board, "board", "", "Board (name, ID, or prefix)")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func newTaskCompleteCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "complete ID",
		Short: "Complete a task and run its impact evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tasks.Complete(context.Background(), args[0], note)
			if err != nil {
				return err
			}

			fmt.Printf("Task %s %s\n", formatter.Bold(t.Title), formatter.StatusPill(t.Status))
			if t.EvaluatedByAI {
				fmt.Printf("Impact: %s  %d XP\n", formatter.ImpactIndicator(t.ImpactLevel), t.XPValue)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Result note passed to the impact evaluation")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}
