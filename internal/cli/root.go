package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tablero-app/bitacora/internal/progression"
	"github.com/tablero-app/bitacora/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Bitacoras service.BitacoraService
	Boards    service.BoardService
	Tasks     service.TaskService
	Sessions  service.SessionService
	Avatars   service.AvatarService
	Ranks     progression.RankTable

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive-only affordances (forms) are skipped when it is nil
	// or returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "bitacora" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bitacora",
		Short: "Task boards with gamified progression tracking",
	}

	root.AddCommand(
		newBitacoraCmd(app),
		newBoardCmd(app),
		newTaskCmd(app),
		newSessionCmd(app),
		newAvatarCmd(app),
	)

	return root
}

// resolveBoardID matches a board by UUID, UUID prefix, or exact name.
func resolveBoardID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("board is required")
	}

	boards, err := app.Boards.List(ctx)
	if err != nil {
		return "", err
	}

	for _, b := range boards {
		if b.ID == input || strings.EqualFold(b.Name, input) {
			return b.ID, nil
		}
	}

	var matches []string
	for _, b := range boards {
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("board not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("board %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveBitacoraID matches a bitácora by UUID, UUID prefix, or exact name.
func resolveBitacoraID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("bitácora is required")
	}

	all, err := app.Bitacoras.List(ctx)
	if err != nil {
		return "", err
	}

	for _, b := range all {
		if b.ID == input || strings.EqualFold(b.Name, input) {
			return b.ID, nil
		}
	}

	var matches []string
	for _, b := range all {
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("bitácora not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("bitácora %q is ambiguous (%d matches)", input, len(matches))
	}
}
