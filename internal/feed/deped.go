// Package feed fetches and parses the DepEd RSS feed. The source server
// filters generic clients, so requests carry a full browser-like header set
// including referer and fetch-metadata headers.
package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/rss"

	"InfoHub/internal/config"
	"InfoHub/internal/domain"
	"InfoHub/internal/ports"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// rfc822Layout matches the pubDate format mandated by RSS 2.0.
	rfc822Layout = "Mon, 02 Jan 2006 15:04:05 -0700"
)

// Client fetches the feed with a fixed timeout and one alternate-URL retry
// on a non-200 response. No further retries, no caching.
type Client struct {
	client       *http.Client
	url          string
	alternateURL string
	referer      string
	logger       *slog.Logger
}

var _ ports.FeedSource = (*Client)(nil)

// NewClient builds a feed client from configuration; a nil HTTP client gets
// one with the configured timeout.
func NewClient(client *http.Client, cfg config.FeedConfig, logger *slog.Logger) *Client {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	return &Client{
		client:       client,
		url:          cfg.URL,
		alternateURL: cfg.AlternateURL,
		referer:      cfg.Referer,
		logger:       logger,
	}
}

// Fetch retrieves the feed and returns channel metadata plus at most maxItems
// items in document order. Missing optional channel or item elements default
// to empty strings; only transport failures, persistent non-200 statuses, and
// unparseable documents produce an error.
func (c *Client) Fetch(ctx context.Context, maxItems int) (domain.ChannelInfo, []domain.FeedItem, error) {
	body, status, err := c.get(ctx, c.url)
	if err != nil {
		return domain.ChannelInfo{}, nil, err
	}

	if status != http.StatusOK {
		c.debug("primary feed URL rejected, trying alternate", "status", status)
		body, status, err = c.get(ctx, c.alternateURL)
		if err != nil {
			return domain.ChannelInfo{}, nil, err
		}
		if status != http.StatusOK {
			return domain.ChannelInfo{}, nil, fmt.Errorf("failed to fetch RSS feed: status code %d", status)
		}
	}

	parsed, err := parseRSS(body)
	if err != nil {
		return domain.ChannelInfo{}, nil, fmt.Errorf("failed to parse RSS feed XML: %w", err)
	}

	if emptyChannel(parsed) && !hasChannelElement(body) {
		return domain.ChannelInfo{}, nil, errors.New("invalid RSS feed format (no channel element found)")
	}

	info := domain.ChannelInfo{
		Title:         parsed.Title,
		Link:          parsed.Link,
		Description:   parsed.Description,
		LastBuildDate: parsed.LastBuildDate,
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if len(items) >= maxItems {
			break
		}
		items = append(items, domain.FeedItem{
			Title:         item.Title,
			Link:          item.Link,
			Description:   item.Description,
			PubDate:       item.PubDate,
			FormattedDate: formatPubDate(item.PubDate),
			Categories:    itemCategories(item),
			Creator:       itemCreator(item),
		})
	}

	c.debug("parsed feed", "title", info.Title, "items", len(items))
	return info, items, nil
}

func (c *Client) get(ctx context.Context, feedURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read feed body: %w", err)
	}

	return body, resp.StatusCode, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Referer", c.referer)
	req.Header.Set("DNT", "1")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "same-origin")
	req.Header.Set("Sec-Fetch-User", "?1")
	req.Header.Set("Cache-Control", "max-age=0")
}

// parseRSS parses the body as RSS; on failure it makes one recovery pass with
// invalid UTF-8 sequences discarded before giving up.
func parseRSS(body []byte) (*rss.Feed, error) {
	parser := &rss.Parser{}

	feed, err := parser.Parse(bytes.NewReader(body))
	if err == nil {
		return feed, nil
	}

	cleaned := strings.ToValidUTF8(string(body), "")
	feed, retryErr := parser.Parse(strings.NewReader(cleaned))
	if retryErr != nil {
		return nil, retryErr
	}
	return feed, nil
}

// emptyChannel reports whether the parser produced a feed with no channel
// content at all. The parser yields the same empty value for a missing
// channel element and for a present-but-empty one, so absence is confirmed
// against the raw body before the feed is rejected.
func emptyChannel(feed *rss.Feed) bool {
	if feed == nil {
		return true
	}
	return feed.Title == "" &&
		feed.Link == "" &&
		feed.Description == "" &&
		feed.LastBuildDate == "" &&
		len(feed.Items) == 0
}

func hasChannelElement(body []byte) bool {
	return bytes.Contains(bytes.ToLower(body), []byte("<channel"))
}

// formatPubDate renders an RFC-822 pubDate as "January 02, 2006 at 03:04 PM";
// anything unparseable is returned verbatim.
func formatPubDate(pubDate string) string {
	t, err := time.Parse(rfc822Layout, pubDate)
	if err != nil {
		return pubDate
	}
	return t.Format("January 02, 2006 at 03:04 PM")
}

func itemCategories(item *rss.Item) []string {
	categories := make([]string, 0, len(item.Categories))
	for _, category := range item.Categories {
		if category != nil && category.Value != "" {
			categories = append(categories, category.Value)
		}
	}
	return categories
}

// itemCreator resolves the Dublin Core creator element, empty when absent.
func itemCreator(item *rss.Item) string {
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		return item.DublinCoreExt.Creator[0]
	}
	return ""
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
