package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	algoliasearch "github.com/algolia/algoliasearch-client-go/v3/algolia/search"

	"DharmaSearch/be/internal/config"
)

// Facet attribute names as the index defines them.
const (
	FacetConcepts = "ai_concepts"
	FacetTags     = "ai_tags"
	FacetRegion   = "us_or_eu"
)

// listAllPageSize mirrors the glossary fetch: one oversized page instead of
// cursor iteration, the corpus is a few hundred talks.
const listAllPageSize = 1000

// Index is the slice of the Algolia index client this adapter needs. The v3
// *algoliasearch.Index satisfies it; tests substitute a double.
type Index interface {
	Search(query string, opts ...interface{}) (algoliasearch.QueryRes, error)
}

// AlgoliaService adapts the Algolia index to the Service interface.
type AlgoliaService struct {
	index Index
}

func NewAlgoliaService(index Index) *AlgoliaService {
	return &AlgoliaService{index: index}
}

// NewAlgoliaIndex builds the v3 index handle from config. The client is
// stateless and safe for concurrent use.
func NewAlgoliaIndex(cfg config.AlgoliaConfig) *algoliasearch.Index {
	client := algoliasearch.NewClient(cfg.AppID, cfg.SearchKey)
	return client.InitIndex(cfg.IndexName)
}

func (s *AlgoliaService) Search(ctx context.Context, query string, maxHits int) ([]TalkRecord, error) {
	res, err := s.index.Search(query, ctx, opt.HitsPerPage(maxHits))
	if err != nil {
		return nil, &SearchError{Op: "query index", Err: err}
	}

	hits, err := hitsToRecords(res.Hits)
	if err != nil {
		return nil, &SearchError{Op: "decode hits", Err: err}
	}
	return hits, nil
}

func (s *AlgoliaService) Explore(ctx context.Context, req ExploreRequest) (*ExploreResponse, error) {
	opts := []interface{}{
		ctx,
		opt.Facets(FacetConcepts, FacetTags, FacetRegion),
	}
	if req.Page > 0 {
		opts = append(opts, opt.Page(req.Page))
	}
	if req.HitsPerPage > 0 {
		opts = append(opts, opt.HitsPerPage(req.HitsPerPage))
	}
	if filters := buildFacetFilters(req); filters != nil {
		opts = append(opts, filters)
	}

	res, err := s.index.Search(req.Query, opts...)
	if err != nil {
		return nil, &SearchError{Op: "query index", Err: err}
	}

	hits, err := hitsToRecords(res.Hits)
	if err != nil {
		return nil, &SearchError{Op: "decode hits", Err: err}
	}

	return &ExploreResponse{
		Hits:        hits,
		TotalHits:   res.NbHits,
		Page:        res.Page,
		Pages:       res.NbPages,
		HitsPerPage: res.HitsPerPage,
		Facets:      res.Facets,
	}, nil
}

func (s *AlgoliaService) ListAll(ctx context.Context) ([]TalkRecord, int, error) {
	res, err := s.index.Search("", ctx, opt.HitsPerPage(listAllPageSize))
	if err != nil {
		return nil, 0, &SearchError{Op: "list index", Err: err}
	}

	hits, err := hitsToRecords(res.Hits)
	if err != nil {
		return nil, 0, &SearchError{Op: "decode hits", Err: err}
	}
	return hits, res.NbHits, nil
}

// -----------------Private Helper Functions-----------------

// buildFacetFilters composes OR within an attribute and AND across attributes.
func buildFacetFilters(req ExploreRequest) *opt.FacetFiltersOption {
	var groups []interface{}
	if len(req.Concepts) > 0 {
		groups = append(groups, orGroup(FacetConcepts, req.Concepts))
	}
	if len(req.Tags) > 0 {
		groups = append(groups, orGroup(FacetTags, req.Tags))
	}
	if req.Region != "" {
		groups = append(groups, fmt.Sprintf("%s:%s", FacetRegion, req.Region))
	}
	if len(groups) == 0 {
		return nil
	}
	return opt.FacetFilterAnd(groups...)
}

func orGroup(attribute string, values []string) *opt.FacetFiltersOption {
	filters := make([]interface{}, len(values))
	for i, v := range values {
		filters[i] = fmt.Sprintf("%s:%s", attribute, v)
	}
	return opt.FacetFilterOr(filters...)
}

// hitsToRecords narrows the untyped hit maps once, at the adapter boundary.
func hitsToRecords(hits []map[string]interface{}) ([]TalkRecord, error) {
	records := make([]TalkRecord, 0, len(hits))
	for _, hit := range hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			return nil, err
		}
		var record TalkRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
