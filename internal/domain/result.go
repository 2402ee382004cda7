package domain

// Status values shared by every extractor envelope. Callers branch on Status
// only; the payload field differs per extractor.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// PostsResult is the envelope returned by the tech-news extractor. The
// payload list never carries omitempty: an empty page is a success with an
// empty list, and the key must survive serialization.
type PostsResult struct {
	Status       string  `json:"status"`
	Posts        []Entry `json:"posts"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// ReposResult is the envelope returned by the trending-repos extractor.
type ReposResult struct {
	Status       string  `json:"status"`
	Repos        []Entry `json:"repos"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// FeedResult is the envelope returned by the feed extractor.
type FeedResult struct {
	Status       string       `json:"status"`
	FeedInfo     *ChannelInfo `json:"feed_info,omitempty"`
	Items        []FeedItem   `json:"items"`
	ErrorMessage string       `json:"error_message,omitempty"`
}
