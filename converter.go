package topicreader

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// Summary is a display digest of an item's description HTML.
type Summary struct {
	Excerpt string `json:"excerpt"`
	Image   string `json:"image"`
}

// Summarizer derives a Summary from description HTML.
// It never fails; unusable input yields an empty Summary.
type Summarizer interface {
	Summarize(html string) Summary
}

// DateFormatter renders a raw feed date for display.
// Dates it cannot parse are returned unchanged.
type DateFormatter interface {
	Format(raw string) string
}
