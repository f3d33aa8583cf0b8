package topicreader

import "strings"

// Category is a forum category with its own feed file.
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`

	// File is the feed filename relative to the feed base URL.
	File string `json:"file"`
}

// FeedURL returns the location of the category's feed below baseURL.
func (c Category) FeedURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(c.File, "/")
}

// DefaultCategories returns the categories the reader knows about, in
// navigation order.
func DefaultCategories() []Category {
	return []Category{
		{Slug: "latest", Name: "Latest", File: "latest.xml"},
		{Slug: "develop", Name: "Development", File: "develop.xml"},
		{Slug: "resource", Name: "Resources", File: "resource.xml"},
		{Slug: "news", Name: "News", File: "news.xml"},
		{Slug: "reading", Name: "Reading", File: "reading.xml"},
		{Slug: "feedback", Name: "Feedback", File: "feedback.xml"},
		{Slug: "gossip", Name: "Gossip", File: "gossip.xml"},
	}
}

// FindCategory returns the category with the given slug.
// Returns ENOTFOUND if no such category exists.
func FindCategory(categories []Category, slug string) (Category, error) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return Category{}, Errorf(ENOTFOUND, "category %q not found", slug)
}
