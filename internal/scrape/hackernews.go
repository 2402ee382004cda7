package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"InfoHub/internal/config"
	"InfoHub/internal/domain"
	"InfoHub/internal/ports"
)

// HackerNews scrapes the front page into (title, link) entries.
type HackerNews struct {
	client *http.Client
	url    string
	logger *slog.Logger
}

var _ ports.PostSource = (*HackerNews)(nil)

// NewHackerNews wires an HTTP client; a nil client gets the library default
// (no timeout, matching the synchronous blocking fetch discipline).
func NewHackerNews(client *http.Client, cfg config.HackerNewsConfig, logger *slog.Logger) *HackerNews {
	if client == nil {
		client = &http.Client{}
	}
	return &HackerNews{client: client, url: cfg.URL, logger: logger}
}

// TopPosts fetches the front page and returns every post found, in page order.
func (h *HackerNews) TopPosts(ctx context.Context) ([]domain.Entry, error) {
	doc, err := fetchDocument(ctx, h.client, h.url)
	if err != nil {
		return nil, err
	}

	posts := extractPosts(doc)
	h.debug("extracted posts", "count", len(posts))
	return posts, nil
}

// extractPosts walks the post rows (tr.athing) and pulls the title anchor out
// of each row's span.titleline. Rows without the expected anchor/href (ads,
// markup drift) are skipped rather than failing the page.
func extractPosts(doc *goquery.Document) []domain.Entry {
	posts := make([]domain.Entry, 0)

	doc.Find("tr.athing").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("span.titleline").First().Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		posts = append(posts, domain.Entry{
			Title: strings.TrimSpace(link.Text()),
			Link:  href,
		})
	})

	return posts
}

func (h *HackerNews) debug(msg string, args ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, args...)
	}
}
