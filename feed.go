package topicreader

import (
	"context"
	"regexp"
	"strings"
)

// DefaultCreator is used when an item carries no dc:creator.
const DefaultCreator = "Anonymous"

// FeedItem represents one topic entry from a category feed.
type FeedItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`

	// TopicID is the decimal topic number taken from the /topic/<digits>
	// segment of Link.
	TopicID string `json:"topicId"`

	// DescriptionHTML is kept as HTML for rendering. CDATA content is
	// returned verbatim; plain content is entity-decoded once.
	DescriptionHTML string `json:"descriptionHtml"`

	// PubDate is the raw date text. It is not validated here.
	PubDate string `json:"pubDate"`
	Creator string `json:"creator"`
}

// FeedService represents a service for reading category feeds.
type FeedService interface {
	// FindFeedItems fetches the feed for the category and returns its valid
	// items in document order.
	// Returns ENOTFOUND if the category does not exist.
	FindFeedItems(ctx context.Context, slug string) ([]*FeedItem, error)
}

var (
	itemRe  = regexp.MustCompile(`(?is)<item(?:\s[^>]*)?>(.*?)</item>`)
	topicRe = regexp.MustCompile(`/topic/(\d+)`)

	titleField       = newFieldPattern("title")
	linkField        = newFieldPattern("link")
	descriptionField = newFieldPattern("description")
	pubDateField     = newFieldPattern("pubDate")
	creatorField     = newFieldPattern("dc:creator")
)

// ParseFeedItems scans a feed body for <item> blocks and returns one
// FeedItem per block that has a link with a topic ID. Other blocks are
// skipped without error. The result is never nil.
func ParseFeedItems(body string) []*FeedItem {
	matches := itemRe.FindAllStringSubmatch(body, -1)
	items := make([]*FeedItem, 0, len(matches))
	for _, m := range matches {
		if item := parseFeedItem(m[1]); item != nil {
			items = append(items, item)
		}
	}
	return items
}

func parseFeedItem(fragment string) *FeedItem {
	link := strings.TrimSpace(linkField.extract(fragment))
	if link == "" {
		return nil
	}
	topicID := TopicID(link)
	if topicID == "" {
		return nil
	}

	creator := creatorField.extract(fragment)
	if creator == "" {
		creator = DefaultCreator
	}

	return &FeedItem{
		Title:           titleField.extract(fragment),
		Link:            link,
		TopicID:         topicID,
		DescriptionHTML: descriptionField.extract(fragment),
		PubDate:         pubDateField.extract(fragment),
		Creator:         creator,
	}
}

// TopicID returns the digits following the first "/topic/" in link, or ""
// when link has no such segment.
func TopicID(link string) string {
	m := topicRe.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// topicFooters are the link texts Discourse appends to every description.
var topicFooters = []string{"Read full topic", "阅读完整话题"}

// IsTopicFooter reports whether text is the "read full topic" footer that
// Discourse appends to item descriptions.
func IsTopicFooter(text string) bool {
	text = strings.TrimSpace(text)
	for _, f := range topicFooters {
		if strings.EqualFold(text, f) {
			return true
		}
	}
	return false
}
