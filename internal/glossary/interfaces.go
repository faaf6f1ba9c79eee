package glossary

import "context"

// Service lists every talk for the chronological browse view.
type Service interface {
	ListTalks(ctx context.Context) (*ListTalksResponse, error)
}

type Talk struct {
	ObjectID   string `json:"id"`
	Title      string `json:"title"`
	YouTubeURL string `json:"youtube_url"`
	Summary    string `json:"summary"`
	TalkDate   int64  `json:"talk_date"`
}

type ListTalksResponse struct {
	Talks []Talk `json:"talks"`
	Total int    `json:"total"`
}
