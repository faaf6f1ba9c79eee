package assistant

import (
	"fmt"
	"net/url"

	"DharmaSearch/be/internal/search"
)

const missingSummary = "No description available."

// Shape turns raw hits into display records. It is total: malformed fields
// degrade (missing summary gets a placeholder, an unparseable video reference
// drops the thumbnail) and never fail. The backend's first hit is the
// recommendation; there is no secondary scoring.
func Shape(hits []search.TalkRecord) []DisplayRecord {
	records := make([]DisplayRecord, 0, len(hits))
	for i, hit := range hits {
		record := DisplayRecord{
			ObjectID:      hit.ObjectID,
			Title:         hit.Title,
			Summary:       hit.Summary,
			Concepts:      hit.Concepts,
			Tags:          hit.Tags,
			IsRecommended: i == 0,
		}
		if record.Summary == "" {
			record.Summary = missingSummary
		}
		if record.Concepts == nil {
			record.Concepts = []string{}
		}
		if record.Tags == nil {
			record.Tags = []string{}
		}
		if id := ExtractYouTubeID(hit.YouTubeURL); id != "" {
			record.VideoID = id
			record.ThumbnailURL = fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
			record.EmbedURL = fmt.Sprintf("https://www.youtube.com/embed/%s", id)
		}
		records = append(records, record)
	}
	return records
}

// ExtractYouTubeID reads the "v" query parameter from a watch URL. Anything
// that is not an absolute URL with a v parameter yields "".
func ExtractYouTubeID(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Query().Get("v")
}
