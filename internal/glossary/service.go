package glossary

import (
	"context"
	"sort"

	"DharmaSearch/be/internal/search"
)

const missingSummary = "No summary available"

type ServiceImpl struct {
	search search.Service
}

func NewServiceImpl(search search.Service) *ServiceImpl {
	return &ServiceImpl{search: search}
}

// ListTalks returns the whole corpus, newest first.
func (s *ServiceImpl) ListTalks(ctx context.Context) (*ListTalksResponse, error) {
	hits, total, err := s.search.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	talks := make([]Talk, 0, len(hits))
	for _, hit := range hits {
		talk := Talk{
			ObjectID:   hit.ObjectID,
			Title:      hit.Title,
			YouTubeURL: hit.YouTubeURL,
			Summary:    hit.Summary,
			TalkDate:   hit.TalkDate,
		}
		if talk.Summary == "" {
			talk.Summary = missingSummary
		}
		talks = append(talks, talk)
	}

	sort.Slice(talks, func(i, j int) bool {
		return talks[i].TalkDate > talks[j].TalkDate
	})

	return &ListTalksResponse{Talks: talks, Total: total}, nil
}
