package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"InfoHub/internal/config"
)

const frontPageHTML = `
<table>
  <tr class="athing" id="1">
    <td><span class="titleline"><a href="https://example.com/launch">Show HN: A thing</a> <span class="sitebit">(example.com)</span></span></td>
  </tr>
  <tr class="athing" id="2">
    <td><span class="titleline">sponsored row without anchor</span></td>
  </tr>
  <tr class="athing" id="3">
    <td><span class="titleline"><a href="item?id=3">Ask HN: Another thing</a></span></td>
  </tr>
</table>`

func TestExtractPosts(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(frontPageHTML))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	posts := extractPosts(doc)
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}

	if posts[0].Title != "Show HN: A thing" {
		t.Fatalf("unexpected first title: %q", posts[0].Title)
	}
	if posts[0].Link != "https://example.com/launch" {
		t.Fatalf("unexpected first link: %q", posts[0].Link)
	}
	if posts[1].Title != "Ask HN: Another thing" {
		t.Fatalf("unexpected second title: %q", posts[1].Title)
	}
	if posts[1].Link != "item?id=3" {
		t.Fatalf("unexpected second link: %q", posts[1].Link)
	}
}

func TestExtractPostsNoRows(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>maintenance</p></body></html>"))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	posts := extractPosts(doc)
	if len(posts) != 0 {
		t.Fatalf("expected no posts, got %d", len(posts))
	}
}

func TestHackerNewsTopPosts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" || r.Header.Get("Accept") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(frontPageHTML))
	}))
	defer server.Close()

	hn := NewHackerNews(server.Client(), config.HackerNewsConfig{URL: server.URL}, nil)

	posts, err := hn.TopPosts(context.Background())
	if err != nil {
		t.Fatalf("TopPosts error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
}

func TestHackerNewsTopPostsBadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	hn := NewHackerNews(server.Client(), config.HackerNewsConfig{URL: server.URL}, nil)

	if _, err := hn.TopPosts(context.Background()); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
