package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"InfoHub/internal/app"
	"InfoHub/internal/config"
	"InfoHub/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		query := strings.Join(os.Args[1:], " ")
		if err := ask(ctx, application, logger, query); err != nil {
			os.Exit(1)
		}
		return
	}

	runPrompt(ctx, application, logger, os.Stdin)
}

// runPrompt reads queries from in until EOF or "exit".
func runPrompt(ctx context.Context, application *app.Application, logger *slog.Logger, in io.Reader) {
	scanner := bufio.NewScanner(in)
	fmt.Print("> ")
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())
		if query == "exit" || query == "quit" {
			return
		}
		if query != "" {
			_ = ask(ctx, application, logger, query)
		}
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		logger.Error("prompt input failed", "error", err)
	}
}

func ask(ctx context.Context, application *app.Application, logger *slog.Logger, query string) error {
	runLogger := logger.With("run_id", uuid.NewString())
	runLogger.Debug("dispatch query", "query", query)

	answer, err := application.Ask(ctx, query)
	if err != nil {
		runLogger.Error("query failed", "error", err)
		return err
	}

	fmt.Println(answer)
	return nil
}
