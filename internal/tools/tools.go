// Package tools exposes the three extractors as agent-framework tools. Every
// call returns a status envelope; errors never propagate past this boundary,
// so a tool invocation is a total function over network and markup failures.
package tools

import (
	"context"
	"fmt"

	adomain "github.com/lexlapax/go-llms/pkg/agent/domain"
	agenttools "github.com/lexlapax/go-llms/pkg/agent/tools"
	sdomain "github.com/lexlapax/go-llms/pkg/schema/domain"

	"InfoHub/internal/domain"
	"InfoHub/internal/ports"
)

// DefaultMaxFeedItems caps feed items when the caller omits max_items.
const DefaultMaxFeedItems = 10

// PostsParams are the parameters of get_hackernews_posts. A nil count means
// return all posts found.
type PostsParams struct {
	NumberOfPosts *int `json:"number_of_posts,omitempty"`
}

// ReposParams are the parameters of get_github_trending_repos.
type ReposParams struct {
	NumberOfRepos *int `json:"number_of_repos,omitempty"`
}

// FeedParams are the parameters of get_deped_rss_feed.
type FeedParams struct {
	MaxItems *int `json:"max_items,omitempty"`
}

var postsParamSchema = &sdomain.Schema{
	Type: "object",
	Properties: map[string]sdomain.Property{
		"number_of_posts": {
			Type:        "integer",
			Description: "Number of posts to return; all posts when omitted",
		},
	},
}

var reposParamSchema = &sdomain.Schema{
	Type: "object",
	Properties: map[string]sdomain.Property{
		"number_of_repos": {
			Type:        "integer",
			Description: "Number of trending repos to return; all repos when omitted",
		},
	},
}

var feedParamSchema = &sdomain.Schema{
	Type: "object",
	Properties: map[string]sdomain.Property{
		"max_items": {
			Type:        "integer",
			Description: "Maximum number of feed items to return (default: 10)",
		},
	},
}

// NewHackerNewsTool returns the get_hackernews_posts tool.
func NewHackerNewsTool(source ports.PostSource) adomain.Tool {
	fn := func(ctx context.Context, params PostsParams) domain.PostsResult {
		return getTopPosts(ctx, source, params)
	}
	return agenttools.NewTool(
		"get_hackernews_posts",
		"Gets the top hackernews posts and extracts top post titles and links",
		fn,
		postsParamSchema,
	)
}

// NewTrendingTool returns the get_github_trending_repos tool.
func NewTrendingTool(source ports.RepoSource) adomain.Tool {
	fn := func(ctx context.Context, params ReposParams) domain.ReposResult {
		return getTrendingRepos(ctx, source, params)
	}
	return agenttools.NewTool(
		"get_github_trending_repos",
		"Gets the trending github repos and extracts repo name and link",
		fn,
		reposParamSchema,
	)
}

// NewFeedTool returns the get_deped_rss_feed tool. defaultMaxItems applies
// when the caller omits max_items; zero or negative falls back to
// DefaultMaxFeedItems.
func NewFeedTool(source ports.FeedSource, defaultMaxItems int) adomain.Tool {
	fn := func(ctx context.Context, params FeedParams) domain.FeedResult {
		return getFeed(ctx, source, params, defaultMaxItems)
	}
	return agenttools.NewTool(
		"get_deped_rss_feed",
		"Fetches and parses the latest news from the DepEd RSS feed",
		fn,
		feedParamSchema,
	)
}

func getTopPosts(ctx context.Context, source ports.PostSource, params PostsParams) domain.PostsResult {
	posts, err := source.TopPosts(ctx)
	if err != nil {
		return domain.PostsResult{
			Status:       domain.StatusError,
			ErrorMessage: fmt.Sprintf("Error when trying to get hackernews posts: %v", err),
		}
	}
	return domain.PostsResult{
		Status: domain.StatusSuccess,
		Posts:  truncate(posts, params.NumberOfPosts),
	}
}

func getTrendingRepos(ctx context.Context, source ports.RepoSource, params ReposParams) domain.ReposResult {
	repos, err := source.TrendingRepos(ctx)
	if err != nil {
		return domain.ReposResult{
			Status:       domain.StatusError,
			ErrorMessage: fmt.Sprintf("Error when trying to get trending repos: %v", err),
		}
	}
	return domain.ReposResult{
		Status: domain.StatusSuccess,
		Repos:  truncate(repos, params.NumberOfRepos),
	}
}

func getFeed(ctx context.Context, source ports.FeedSource, params FeedParams, defaultMaxItems int) domain.FeedResult {
	if defaultMaxItems <= 0 {
		defaultMaxItems = DefaultMaxFeedItems
	}
	maxItems := defaultMaxItems
	if params.MaxItems != nil {
		maxItems = *params.MaxItems
	}

	info, items, err := source.Fetch(ctx, maxItems)
	if err != nil {
		return domain.FeedResult{
			Status:       domain.StatusError,
			ErrorMessage: fmt.Sprintf("Error when trying to parse DepEd RSS feed: %v", err),
		}
	}
	if items == nil {
		items = []domain.FeedItem{}
	}
	return domain.FeedResult{
		Status:   domain.StatusSuccess,
		FeedInfo: &info,
		Items:    items,
	}
}

// truncate keeps the first min(limit, len) entries, preserving page order;
// a nil limit returns the full list. The result is never nil so the payload
// key serializes as an empty list, not null.
func truncate(entries []domain.Entry, limit *int) []domain.Entry {
	if entries == nil {
		entries = []domain.Entry{}
	}
	if limit == nil {
		return entries
	}
	n := *limit
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
