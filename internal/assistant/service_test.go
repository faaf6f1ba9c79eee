package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DharmaSearch/be/internal/extractor"
	"DharmaSearch/be/internal/search"
)

type fakeExtractor struct {
	phrases []string
	err     error
	calls   int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) ([]string, error) {
	f.calls++
	return f.phrases, f.err
}

type fakeSearch struct {
	hits      []search.TalkRecord
	err       error
	calls     int
	lastQuery string
	lastMax   int
}

func (f *fakeSearch) Search(_ context.Context, query string, maxHits int) ([]search.TalkRecord, error) {
	f.calls++
	f.lastQuery = query
	f.lastMax = maxHits
	return f.hits, f.err
}

func (f *fakeSearch) Explore(_ context.Context, _ search.ExploreRequest) (*search.ExploreResponse, error) {
	return &search.ExploreResponse{}, nil
}

func (f *fakeSearch) ListAll(_ context.Context) ([]search.TalkRecord, int, error) {
	return f.hits, len(f.hits), nil
}

func TestQueryPipeline(t *testing.T) {
	ext := &fakeExtractor{phrases: []string{"inner stillness", "meditation peace"}}
	idx := &fakeSearch{hits: []search.TalkRecord{
		{ObjectID: "talk-1", Title: "On Stillness", YouTubeURL: "https://www.youtube.com/watch?v=abc"},
		{ObjectID: "talk-2", Title: "On Peace"},
	}}
	svc := NewServiceImpl(ext, idx)

	results, err := svc.Query(context.Background(), "How do I find inner stillness?")
	require.NoError(t, err)

	assert.Equal(t, "inner stillness meditation peace", idx.lastQuery)
	assert.Equal(t, GuidedMaxHits, idx.lastMax)
	require.Len(t, results, 2)
	assert.True(t, results[0].IsRecommended)
	assert.False(t, results[1].IsRecommended)
}

func TestQueryEmptyQuestionMakesNoCalls(t *testing.T) {
	ext := &fakeExtractor{}
	idx := &fakeSearch{}
	svc := NewServiceImpl(ext, idx)

	for _, question := range []string{"", "   ", "\n\t"} {
		_, err := svc.Query(context.Background(), question)
		require.Error(t, err)

		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr)
	}
	assert.Zero(t, ext.calls, "extractor called for a blank question")
	assert.Zero(t, idx.calls, "search called for a blank question")
}

func TestQueryExtractionFailureHaltsBeforeSearch(t *testing.T) {
	ext := &fakeExtractor{err: &extractor.ExtractionError{
		Kind:   extractor.KindMalformed,
		Reason: "response is not a JSON array of strings",
	}}
	idx := &fakeSearch{}
	svc := NewServiceImpl(ext, idx)

	_, err := svc.Query(context.Background(), "What is surrender?")
	require.Error(t, err)

	var extractionErr *extractor.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Zero(t, idx.calls, "search must not run after a failed extraction")
}

func TestQuerySearchFailure(t *testing.T) {
	ext := &fakeExtractor{phrases: []string{"surrender"}}
	idx := &fakeSearch{err: &search.SearchError{Op: "query index", Err: errors.New("unreachable")}}
	svc := NewServiceImpl(ext, idx)

	_, err := svc.Query(context.Background(), "What is surrender?")
	require.Error(t, err)

	var searchErr *search.SearchError
	require.ErrorAs(t, err, &searchErr)
}

func TestQueryZeroHitsSucceedsEmpty(t *testing.T) {
	ext := &fakeExtractor{phrases: []string{"obscure phrase"}}
	idx := &fakeSearch{hits: nil}
	svc := NewServiceImpl(ext, idx)

	results, err := svc.Query(context.Background(), "Something nothing matches")
	require.NoError(t, err)
	assert.Empty(t, results)
}
