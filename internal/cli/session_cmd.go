package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/tablero-app/bitacora/internal/cli/formatter"
	"github.com/tablero-app/bitacora/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage work sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var board, start, end, note, workType string
	var tasksDone int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Without times on the command line, fall back to the
			// interactive form when a terminal is attached.
			if start == "" && end == "" {
				if !app.interactive() {
					return fmt.Errorf("--start and --end are required in non-interactive mode")
				}
				if err := runSessionForm(ctx, app, &board, &start, &end, &note, &workType, &tasksDone); err != nil {
					return err
				}
			}

			boardID, err := resolveBoardID(ctx, app, board)
			if err != nil {
				return err
			}
			startTime, err := domain.ParseTimeOfDay(start)
			if err != nil {
				return err
			}
			endTime, err := domain.ParseTimeOfDay(end)
			if err != nil {
				return err
			}

			s := &domain.WorkSession{
				BoardID:        boardID,
				Date:           time.Now().UTC().Truncate(24 * time.Hour),
				StartTime:      startTime,
				EndTime:        endTime,
				TasksCompleted: tasksDone,
				Note:           note,
				WorkType:       workType,
			}
			if err := app.Sessions.Log(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Logged %d min session on board %s (%s)\n", s.DurationMin, formatter.TruncID(boardID), formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&board, "board", "", "Board (name, ID, or prefix)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().IntVar(&tasksDone, "tasks-done", 0, "Tasks completed during the session")
	cmd.Flags().StringVar(&note, "note", "", "Session note")
	cmd.Flags().StringVar(&workType, "type", "", "Work type tag")

	return cmd
}

// runSessionForm collects the session fields interactively.
func runSessionForm(ctx context.Context, app *App, board, start, end, note, workType *string, tasksDone *int) error {
	boards, err := app.Boards.List(ctx)
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		return fmt.Errorf("no boards exist yet, create one with: bitacora board add")
	}

	boardOptions := make([]huh.Option[string], 0, len(boards))
	for _, b := range boards {
		boardOptions = append(boardOptions, huh.NewOption(b.Name, b.ID))
	}

	typeOptions := make([]huh.Option[string], 0, len(domain.ValidWorkTypes)+1)
	typeOptions = append(typeOptions, huh.NewOption("(none)", ""))
	for wt := range domain.ValidWorkTypes {
		typeOptions = append(typeOptions, huh.NewOption(wt, wt))
	}

	var tasksStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Board").Options(boardOptions...).Value(board),
			huh.NewInput().Title("Start (HH:MM)").Placeholder("09:00").Value(start).Validate(validateClock),
			huh.NewInput().Title("End (HH:MM)").Placeholder("10:30").Value(end).Validate(validateClock),
			huh.NewInput().Title("Tasks completed").Placeholder("0").Value(&tasksStr).Validate(validateOptionalCount),
			huh.NewSelect[string]().Title("Work type").Options(typeOptions...).Value(workType),
			huh.NewInput().Title("Note").Value(note),
		),
	).WithTheme(bitacoraHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	if tasksStr != "" {
		n, err := strconv.Atoi(tasksStr)
		if err != nil {
			return fmt.Errorf("invalid task count %q", tasksStr)
		}
		*tasksDone = n
	}
	return nil
}

func validateClock(s string) error {
	_, err := domain.ParseTimeOfDay(s)
	return err
}

func validateOptionalCount(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

func newSessionListCmd(app *App) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			boardID, err := resolveBoardID(ctx, app, board)
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.ListByBoard(ctx, boardID)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.HumanDate(s.Date),
					fmt.Sprintf("%s-%s", s.StartTime, s.EndTime),
					fmt.Sprintf("%d min", s.DurationMin),
					fmt.Sprintf("%d", s.TasksCompleted),
					formatter.Truncate(s.Note, 40),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "DATE", "TIME", "DURATION", "TASKS", "NOTE"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&board, "board", "", "Board (name, ID, or prefix)")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", formatter.TruncID(args[0]))
			return nil
		},
	}
}
