package search

import (
	"context"
	"fmt"
)

// TalkRecord is one indexed talk, exactly as the index stores it. The index
// owns these records; this service only reads them.
type TalkRecord struct {
	ObjectID   string   `json:"objectID"`
	Title      string   `json:"title_normalized"`
	YouTubeURL string   `json:"youtube_url"`
	Summary    string   `json:"ai_summary,omitempty"`
	Concepts   []string `json:"ai_concepts,omitempty"`
	Tags       []string `json:"ai_tags,omitempty"`
	TalkDate   int64    `json:"talk_date"` // unix seconds
	Region     string   `json:"us_or_eu"`  // "us" or "eu"
}

// Service is the read-only boundary to the talks index. Zero hits is a valid
// result on every method, never an error.
type Service interface {
	// Search runs the guided-mode query: free text, capped hit count, no facets.
	Search(ctx context.Context, query string, maxHits int) ([]TalkRecord, error)

	// Explore runs the user-driven exploration query with facet refinements and
	// pagination; facet value counts come back alongside the hits.
	Explore(ctx context.Context, req ExploreRequest) (*ExploreResponse, error)

	// ListAll fetches the whole index for the chronological glossary view.
	ListAll(ctx context.Context) ([]TalkRecord, int, error)
}

type ExploreRequest struct {
	Query       string
	Concepts    []string
	Tags        []string
	Region      string
	Page        int
	HitsPerPage int
}

type ExploreResponse struct {
	Hits        []TalkRecord              `json:"hits"`
	TotalHits   int                       `json:"total"`
	Page        int                       `json:"page"`
	Pages       int                       `json:"pages"`
	HitsPerPage int                       `json:"hits_per_page"`
	Facets      map[string]map[string]int `json:"facets,omitempty"`
}

// SearchError wraps a backend or response-shape failure. "Zero matches" is not
// one of these.
type SearchError struct {
	Op  string
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search: %s: %v", e.Op, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
