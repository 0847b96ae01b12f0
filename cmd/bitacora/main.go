package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/tablero-app/bitacora/internal/cli"
	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/evaluator"
	"github.com/tablero-app/bitacora/internal/llm"
	"github.com/tablero-app/bitacora/internal/progression"
	"github.com/tablero-app/bitacora/internal/repository"
	"github.com/tablero-app/bitacora/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.bitacora/bitacora.db
	dbPath := os.Getenv("BITACORA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".bitacora", "bitacora.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	bitacoraRepo := repository.NewSQLiteBitacoraRepo(database)
	boardRepo := repository.NewSQLiteBoardRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	avatarRepo := repository.NewSQLiteAvatarRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Impact scoring: remote client when a credential is configured,
	// neutral defaults otherwise.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	impactEval := evaluator.NewImpactEvaluator(llm.NewChatClient(llmCfg, observer))

	stepObserver := service.NewLogStepObserver(os.Stderr)
	ranks := progression.DefaultRankTable()

	avatarSvc := service.NewAvatarService(avatarRepo, uow, ranks, stepObserver)
	app := &cli.App{
		Bitacoras: service.NewBitacoraService(bitacoraRepo),
		Boards:    service.NewBoardService(boardRepo, bitacoraRepo),
		Tasks:     service.NewTaskService(taskRepo, boardRepo, entryRepo, sessionRepo, impactEval, avatarSvc, stepObserver),
		Sessions:  service.NewSessionService(sessionRepo, boardRepo, avatarSvc, stepObserver),
		Avatars:   avatarSvc,
		Ranks:     ranks,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
