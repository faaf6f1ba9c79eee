package assistant

import (
	"context"
	"log"
	"strings"

	"DharmaSearch/be/internal/extractor"
	"DharmaSearch/be/internal/search"
)

// ServiceImpl sequences the guided pipeline. Extraction must succeed before
// any search is issued; the joined query string is derived from its output.
type ServiceImpl struct {
	extractor extractor.Service
	search    search.Service
}

func NewServiceImpl(extractor extractor.Service, search search.Service) *ServiceImpl {
	return &ServiceImpl{extractor: extractor, search: search}
}

func (s *ServiceImpl) Query(ctx context.Context, question string) ([]DisplayRecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, &InputError{Reason: "question is empty"}
	}

	phrases, err := s.extractor.Extract(ctx, question)
	if err != nil {
		return nil, err
	}

	// Phrase order is preserved into the query, though the backend's ranking
	// is not known to care.
	query := strings.Join(phrases, " ")
	log.Printf("Guided search query: %q", query)

	hits, err := s.search.Search(ctx, query, GuidedMaxHits)
	if err != nil {
		return nil, err
	}

	return Shape(hits), nil
}
