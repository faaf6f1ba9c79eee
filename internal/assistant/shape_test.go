package assistant

import (
	"testing"

	"DharmaSearch/be/internal/search"
)

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "standard watch url",
			url:  "https://www.youtube.com/watch?v=ABC123",
			want: "ABC123",
		},
		{
			name: "watch url with extra params",
			url:  "https://www.youtube.com/watch?t=42&v=xyz_789",
			want: "xyz_789",
		},
		{
			name: "no v parameter",
			url:  "https://www.youtube.com/playlist?list=PL1",
			want: "",
		},
		{
			name: "not a url",
			url:  "talk recording, 2021",
			want: "",
		},
		{
			name: "relative path",
			url:  "/watch?v=ABC123",
			want: "",
		},
		{
			name: "empty string",
			url:  "",
			want: "",
		},
		{
			name: "control character breaks parsing",
			url:  "https://example.com/\x01?v=ABC",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractYouTubeID(tt.url); got != tt.want {
				t.Errorf("ExtractYouTubeID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestShapeEmpty(t *testing.T) {
	if got := Shape(nil); len(got) != 0 {
		t.Errorf("Shape(nil) = %v, want empty", got)
	}
	if got := Shape([]search.TalkRecord{}); len(got) != 0 {
		t.Errorf("Shape([]) = %v, want empty", got)
	}
}

func TestShape(t *testing.T) {
	hits := []search.TalkRecord{
		{
			ObjectID:   "talk-1",
			Title:      "On Stillness",
			YouTubeURL: "https://www.youtube.com/watch?v=abc123",
			Summary:    "A talk about stillness.",
			Concepts:   []string{"stillness"},
			Tags:       []string{"breath"},
		},
		{
			ObjectID:   "talk-2",
			Title:      "On Surrender",
			YouTubeURL: "not a url at all",
		},
		{
			ObjectID:   "talk-3",
			Title:      "On Effort",
			YouTubeURL: "https://www.youtube.com/watch?list=only",
		},
	}

	got := Shape(hits)
	if len(got) != len(hits) {
		t.Fatalf("len = %d, want %d", len(got), len(hits))
	}

	// Exactly the first record is recommended
	for i, record := range got {
		if record.IsRecommended != (i == 0) {
			t.Errorf("record %d IsRecommended = %v", i, record.IsRecommended)
		}
	}

	if got[0].VideoID != "abc123" {
		t.Errorf("VideoID = %q, want abc123", got[0].VideoID)
	}
	if got[0].ThumbnailURL != "https://img.youtube.com/vi/abc123/hqdefault.jpg" {
		t.Errorf("ThumbnailURL = %q", got[0].ThumbnailURL)
	}
	if got[0].EmbedURL != "https://www.youtube.com/embed/abc123" {
		t.Errorf("EmbedURL = %q", got[0].EmbedURL)
	}

	// Malformed video references degrade: no id, no thumbnail, no crash
	for _, i := range []int{1, 2} {
		if got[i].VideoID != "" || got[i].ThumbnailURL != "" || got[i].EmbedURL != "" {
			t.Errorf("record %d should have no video fields: %+v", i, got[i])
		}
	}

	// Missing optional fields default rather than stay nil
	if got[1].Summary != missingSummary {
		t.Errorf("Summary = %q, want placeholder", got[1].Summary)
	}
	if got[1].Concepts == nil || got[1].Tags == nil {
		t.Errorf("badge sets should default to empty, got %+v", got[1])
	}
	if len(got[1].Concepts) != 0 || len(got[1].Tags) != 0 {
		t.Errorf("badge sets should be empty, got %+v", got[1])
	}
}
