package ports

import (
	"context"

	"InfoHub/internal/domain"
)

// PostSource pulls the current front-page entries from a news aggregator.
type PostSource interface {
	TopPosts(ctx context.Context) ([]domain.Entry, error)
}

// RepoSource pulls the repositories currently listed on a trending page.
type RepoSource interface {
	TrendingRepos(ctx context.Context) ([]domain.Entry, error)
}

// FeedSource fetches channel metadata and up to maxItems items from an RSS feed.
type FeedSource interface {
	Fetch(ctx context.Context, maxItems int) (domain.ChannelInfo, []domain.FeedItem, error)
}
