package agents

import (
	"context"
	"testing"

	"github.com/lexlapax/go-llms/pkg/agent/core"

	"InfoHub/internal/config"
	"InfoHub/internal/domain"
	"InfoHub/internal/tools"
)

type fixedPosts struct{}

func (fixedPosts) TopPosts(_ context.Context) ([]domain.Entry, error) {
	return []domain.Entry{{Title: "post", Link: "https://example.com"}}, nil
}

type fixedRepos struct{}

func (fixedRepos) TrendingRepos(_ context.Context) ([]domain.Entry, error) {
	return []domain.Entry{{Title: "owner/repo", Link: "https://github.com/owner/repo"}}, nil
}

type fixedFeed struct{}

func (fixedFeed) Fetch(_ context.Context, _ int) (domain.ChannelInfo, []domain.FeedItem, error) {
	return domain.ChannelInfo{Title: "DepEd News"}, nil, nil
}

func testToolset() Toolset {
	return Toolset{
		HackerNews: tools.NewHackerNewsTool(fixedPosts{}),
		Trending:   tools.NewTrendingTool(fixedRepos{}),
		Feed:       tools.NewFeedTool(fixedFeed{}, 0),
	}
}

func TestBuildCoordinator(t *testing.T) {
	coordinator, err := BuildCoordinator(config.LLMConfig{Model: "mock"}, testToolset(), nil)
	if err != nil {
		t.Fatalf("BuildCoordinator error: %v", err)
	}

	if coordinator.Name() != "information_coordinator" {
		t.Fatalf("unexpected coordinator name: %s", coordinator.Name())
	}

	// each leaf agent is exposed to the coordinator as a callable sub-tool
	for _, name := range []string{"search_assistant", "hackernews_agent", "deped_agent"} {
		if _, ok := coordinator.GetTool(name); !ok {
			t.Fatalf("coordinator is missing sub-agent tool %s", name)
		}
	}
}

func TestLeafAgentToolBindings(t *testing.T) {
	coordinator, err := BuildCoordinator(config.LLMConfig{Model: "mock"}, testToolset(), nil)
	if err != nil {
		t.Fatalf("BuildCoordinator error: %v", err)
	}

	bindings := map[string][]string{
		"search_assistant": {"web_search"},
		"hackernews_agent": {"get_hackernews_posts", "get_github_trending_repos"},
		"deped_agent":      {"get_deped_rss_feed"},
	}

	for agentName, toolNames := range bindings {
		sub := coordinator.GetSubAgentByName(agentName)
		if sub == nil {
			t.Fatalf("sub-agent %s not found", agentName)
		}
		leaf, ok := sub.(*core.LLMAgent)
		if !ok {
			t.Fatalf("sub-agent %s is not an LLM agent", agentName)
		}
		for _, toolName := range toolNames {
			if _, ok := leaf.GetTool(toolName); !ok {
				t.Fatalf("agent %s is missing tool %s", agentName, toolName)
			}
		}
	}
}

func TestBuildCoordinatorBadModel(t *testing.T) {
	if _, err := BuildCoordinator(config.LLMConfig{Model: ""}, testToolset(), nil); err == nil {
		t.Fatal("expected error for empty provider/model string")
	}
}
