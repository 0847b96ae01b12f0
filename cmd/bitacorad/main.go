package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tablero-app/bitacora/internal/db"
	"github.com/tablero-app/bitacora/internal/evaluator"
	"github.com/tablero-app/bitacora/internal/httpapi"
	"github.com/tablero-app/bitacora/internal/llm"
	"github.com/tablero-app/bitacora/internal/progression"
	"github.com/tablero-app/bitacora/internal/repository"
	"github.com/tablero-app/bitacora/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("bitacorad: %v", err)
	}
}

func run() error {
	dbPath := os.Getenv("BITACORA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".bitacora", "bitacora.db")
	}

	port := os.Getenv("BITACORA_HTTP_PORT")
	if port == "" {
		port = "7342"
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

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	impactEval := evaluator.NewImpactEvaluator(llm.NewChatClient(llmCfg, observer))

	stepObserver := service.NewLogStepObserver(os.Stderr)
	ranks := progression.DefaultRankTable()

	avatarSvc := service.NewAvatarService(avatarRepo, uow, ranks, stepObserver)
	handler := &httpapi.Handler{
		Bitacoras: service.NewBitacoraService(bitacoraRepo),
		Boards:    service.NewBoardService(boardRepo, bitacoraRepo),
		Tasks:     service.NewTaskService(taskRepo, boardRepo, entryRepo, sessionRepo, impactEval, avatarSvc, stepObserver),
		Sessions:  service.NewSessionService(sessionRepo, boardRepo, avatarSvc, stepObserver),
		Avatars:   avatarSvc,
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: httpapi.NewRouter(handler),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
