package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"InfoHub/internal/config"
	"InfoHub/internal/domain"
	"InfoHub/internal/ports"
)

// Trending scrapes the trending-repositories page into (title, link) entries.
type Trending struct {
	client *http.Client
	url    string
	host   string
	logger *slog.Logger
}

var _ ports.RepoSource = (*Trending)(nil)

// NewTrending wires an HTTP client and the host prefix used to absolutize
// the relative repository hrefs found on the page.
func NewTrending(client *http.Client, cfg config.TrendingConfig, logger *slog.Logger) *Trending {
	if client == nil {
		client = &http.Client{}
	}
	return &Trending{client: client, url: cfg.URL, host: strings.TrimSuffix(cfg.LinkHost, "/"), logger: logger}
}

// TrendingRepos fetches the trending page and returns every repository card
// found, in page order.
func (t *Trending) TrendingRepos(ctx context.Context) ([]domain.Entry, error) {
	doc, err := fetchDocument(ctx, t.client, t.url)
	if err != nil {
		return nil, err
	}

	repos := extractRepos(doc, t.host)
	t.debug("extracted repos", "count", len(repos))
	return repos, nil
}

// extractRepos walks the repository cards (article.Box-row), taking the
// anchor inside each card's h2.h3 heading. Cards without the expected
// heading/anchor are skipped.
func extractRepos(doc *goquery.Document, host string) []domain.Entry {
	repos := make([]domain.Entry, 0)

	doc.Find("article.Box-row").Each(func(_ int, card *goquery.Selection) {
		link := card.Find("h2.h3").First().Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		repos = append(repos, domain.Entry{
			Title: anchorTitle(link),
			Link:  host + href,
		})
	})

	return repos
}

// anchorTitle reconstructs the compact "owner/name" form. The raw markup
// splits owner and name across text fragments padded with whitespace, so the
// stripped fragments are joined and every remaining space removed. With fewer
// than two fragments the whole anchor text is cleaned instead.
func anchorTitle(link *goquery.Selection) string {
	parts := strippedStrings(link)
	if len(parts) >= 2 {
		return strings.ReplaceAll(strings.Join(parts, " "), " ", "")
	}

	title := strings.TrimSpace(link.Text())
	title = strings.ReplaceAll(title, "\n", "")
	return strings.ReplaceAll(title, " ", "")
}

// strippedStrings collects the non-empty, whitespace-trimmed text fragments
// under the selection, in document order.
func strippedStrings(sel *goquery.Selection) []string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, node := range sel.Nodes {
		walk(node)
	}

	return parts
}

func (t *Trending) debug(msg string, args ...any) {
	if t.logger != nil {
		t.logger.Debug(msg, args...)
	}
}
