package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lexlapax/go-llms/pkg/agent/core"
	adomain "github.com/lexlapax/go-llms/pkg/agent/domain"

	"InfoHub/internal/agents"
	"InfoHub/internal/config"
	"InfoHub/internal/feed"
	"InfoHub/internal/logging"
	"InfoHub/internal/scrape"
	"InfoHub/internal/tools"
)

// Application wires configuration to the extractors and the agent hierarchy.
type Application struct {
	cfg         config.Config
	coordinator *core.LLMAgent
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	hackerNews := scrape.NewHackerNews(nil, cfg.Sources.HackerNews, baseLogger.With("component", "scrape.hackernews"))
	trending := scrape.NewTrending(nil, cfg.Sources.Trending, baseLogger.With("component", "scrape.trending"))
	feedClient := feed.NewClient(nil, cfg.Sources.Feed, baseLogger.With("component", "feed.deped"))

	toolset := agents.Toolset{
		HackerNews: tools.NewHackerNewsTool(hackerNews),
		Trending:   tools.NewTrendingTool(trending),
		Feed:       tools.NewFeedTool(feedClient, cfg.Sources.Feed.MaxItems),
	}

	coordinator, err := agents.BuildCoordinator(cfg.LLM, toolset, baseLogger)
	if err != nil {
		return nil, fmt.Errorf("build coordinator: %w", err)
	}

	return &Application{cfg: cfg, coordinator: coordinator}, nil
}

// Ask routes one user query through the coordinator and returns its answer.
func (a *Application) Ask(ctx context.Context, query string) (string, error) {
	state := adomain.NewState()
	state.Set("user_input", query)

	result, err := a.coordinator.Run(ctx, state)
	if err != nil {
		return "", fmt.Errorf("run coordinator: %w", err)
	}

	if output, ok := result.Get("output"); ok {
		return fmt.Sprintf("%v", output), nil
	}
	return "", fmt.Errorf("coordinator returned no output")
}
