// Package agents declares the three leaf agents and the coordinator on top of
// the go-llms framework. The routing between sub-agents is the framework's
// responsibility; this package only decides which tools each agent carries
// and what the instruction text says.
package agents

import (
	"fmt"
	"log/slog"

	btools "github.com/lexlapax/go-llms/pkg/agent/builtins/tools"
	_ "github.com/lexlapax/go-llms/pkg/agent/builtins/tools/web" // registers web_search
	"github.com/lexlapax/go-llms/pkg/agent/core"
	adomain "github.com/lexlapax/go-llms/pkg/agent/domain"
	"github.com/lexlapax/go-llms/pkg/util/llmutil"

	"InfoHub/internal/config"
)

const searchInstruction = `You are a helpful assistant specializing in searching the web for:
- General information on any topic
- Current weather conditions and forecasts
- Latest news stories and updates

Always use web search to find the most up-to-date and accurate information when answering questions.`

const hackerNewsInstruction = `I can get the top hacker news posts and the trending github repos`

const depedInstruction = `You are a helpful assistant specializing in providing the latest news and updates from the Department of Education (DepEd).
You can fetch the most recent articles, press releases, memoranda, and other official communications from DepEd.

When users ask about DepEd news, use the get_deped_rss_feed tool to fetch the latest information.
Be sure to present the information in a clear, well-organized format.

If there's an issue connecting to the RSS feed, let the user know and offer to search for DepEd news using the search_assistant instead.`

const coordinatorInstruction = `You are a helpful information assistant. You can:
1. Retrieve the latest tech news from Hacker News and trending GitHub repositories
2. Search the web for additional information when needed
3. Fetch the latest news and updates from the Department of Education (DepEd)

Use the appropriate agent tool based on the user's query:
- Use the hackernews_agent for questions about current tech news and GitHub trends
- Use the search_assistant for general questions requiring web search
- Use the deped_agent for questions about Department of Education news, updates, and official communications

If one agent encounters an error, try to use another relevant agent to still provide helpful information.
For example, if the deped_agent cannot connect to the RSS feed, use the search_assistant to find recent DepEd news.`

// Toolset carries the extractor tools the leaf agents are bound to.
type Toolset struct {
	HackerNews adomain.Tool
	Trending   adomain.Tool
	Feed       adomain.Tool
}

// BuildCoordinator assembles the three leaf agents and the coordinator that
// holds them as callable sub-tools.
func BuildCoordinator(cfg config.LLMConfig, ts Toolset, logger *slog.Logger) (*core.LLMAgent, error) {
	provider, err := llmutil.NewProviderFromString(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("create provider %q: %w", cfg.Model, err)
	}

	search := core.NewLLMAgent(
		"search_assistant",
		"Assistant that searches the web for general information, weather, and news",
		core.LLMDeps{Provider: provider, Logger: agentLogger(logger, "search_assistant")},
	)
	search.SetSystemPrompt(searchInstruction)

	webSearch, ok := btools.GetTool("web_search")
	if !ok {
		return nil, fmt.Errorf("web_search builtin tool is not registered")
	}
	search.AddTool(webSearch)

	hackernews := core.NewLLMAgent(
		"hackernews_agent",
		"Agent to get the top hackernews posts and trending github repos",
		core.LLMDeps{Provider: provider, Logger: agentLogger(logger, "hackernews_agent")},
	)
	hackernews.SetSystemPrompt(hackerNewsInstruction)
	hackernews.AddTool(ts.HackerNews)
	hackernews.AddTool(ts.Trending)

	deped := core.NewLLMAgent(
		"deped_agent",
		"Agent that fetches and parses the latest news from the Department of Education (DepEd) RSS feed",
		core.LLMDeps{Provider: provider, Logger: agentLogger(logger, "deped_agent")},
	)
	deped.SetSystemPrompt(depedInstruction)
	deped.AddTool(ts.Feed)

	coordinator := core.NewLLMAgent(
		"information_coordinator",
		"I coordinate between retrieving tech news, education news, and performing web searches.",
		core.LLMDeps{Provider: provider, Logger: agentLogger(logger, "information_coordinator")},
	)
	coordinator.SetSystemPrompt(coordinatorInstruction)

	for _, sub := range []adomain.BaseAgent{search, hackernews, deped} {
		if err := coordinator.AddSubAgent(sub); err != nil {
			return nil, fmt.Errorf("add sub-agent %s: %w", sub.Name(), err)
		}
	}

	return coordinator, nil
}

func agentLogger(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger.With("agent", name)
}
