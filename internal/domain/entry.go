package domain

// Entry is a single scraped post or repository: display text plus an absolute URL.
type Entry struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ChannelInfo carries RSS channel metadata; absent elements stay empty strings.
type ChannelInfo struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Description   string `json:"description"`
	LastBuildDate string `json:"last_build_date"`
}

// FeedItem is one RSS item. PubDate keeps the feed's original RFC-822 string;
// FormattedDate is the human-readable rendering and equals PubDate verbatim
// when the original cannot be parsed.
type FeedItem struct {
	Title         string   `json:"title"`
	Link          string   `json:"link"`
	Description   string   `json:"description"`
	PubDate       string   `json:"pub_date"`
	FormattedDate string   `json:"formatted_date"`
	Categories    []string `json:"categories"`
	Creator       string   `json:"creator"`
}
