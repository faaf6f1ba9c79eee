package assistant

import (
	"context"
)

// GuidedMaxHits caps the guided question-answering flow at a handful of talks.
// The exploration view is deliberately uncapped; only this flow is curated.
const GuidedMaxHits = 3

// Service runs the guided pipeline: extract phrases, search, shape.
type Service interface {
	Query(ctx context.Context, question string) ([]DisplayRecord, error)
}

// DisplayRecord is a shaped hit, ready for the presentation layer.
type DisplayRecord struct {
	ObjectID      string   `json:"id"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	VideoID       string   `json:"video_id,omitempty"`
	ThumbnailURL  string   `json:"thumbnail_url,omitempty"`
	EmbedURL      string   `json:"embed_url,omitempty"`
	Concepts      []string `json:"concepts"`
	Tags          []string `json:"tags"`
	IsRecommended bool     `json:"is_recommended"`
}

type QueryRequest struct {
	Question string `json:"question"`
}

type QueryResponse struct {
	Results []DisplayRecord `json:"results"`
	Total   int             `json:"total"`
}

type ExtractPhrasesRequest struct {
	Question string `json:"question"`
}

type ExtractPhrasesResponse struct {
	Phrases []string `json:"phrases"`
}

// InputError means the question itself was unusable; no upstream call was made.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}
