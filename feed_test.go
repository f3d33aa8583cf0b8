package topicreader_test

import (
	"testing"

	"github.com/fwojciec/topicreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8" ?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
  <title>Development - LINUX DO</title>
  <link>https://linux.do/c/develop/4</link>
  <item>
    <title><![CDATA[Hello <World>]]></title>
    <link> https://linux.do/t/topic/42 </link>
    <description><![CDATA[<p>Body &amp; more</p>]]></description>
    <pubDate>Mon, 01 Jan 2024 10:00:00 +0000</pubDate>
    <dc:creator><![CDATA[alice]]></dc:creator>
  </item>
  <item>
    <title>No link here</title>
  </item>
  <item>
    <title>Not a topic</title>
    <link>https://linux.do/latest</link>
  </item>
  <item>
    <title>Tom &amp; Jerry</title>
    <link>https://linux.do/t/some-slug/topic/7?page=2</link>
    <description>&lt;p&gt;Escaped&lt;/p&gt;</description>
    <pubDate>not a date</pubDate>
  </item>
</channel>
</rss>`

func TestParseFeedItems(t *testing.T) {
	t.Parallel()

	t.Run("parses valid items in document order", func(t *testing.T) {
		t.Parallel()

		items := topicreader.ParseFeedItems(sampleFeed)

		require.Len(t, items, 2)

		assert.Equal(t, &topicreader.FeedItem{
			Title:           "Hello <World>",
			Link:            "https://linux.do/t/topic/42",
			TopicID:         "42",
			DescriptionHTML: "<p>Body &amp; more</p>",
			PubDate:         "Mon, 01 Jan 2024 10:00:00 +0000",
			Creator:         "alice",
		}, items[0])

		assert.Equal(t, &topicreader.FeedItem{
			Title:           "Tom & Jerry",
			Link:            "https://linux.do/t/some-slug/topic/7?page=2",
			TopicID:         "7",
			DescriptionHTML: "<p>Escaped</p>",
			PubDate:         "not a date",
			Creator:         topicreader.DefaultCreator,
		}, items[1])
	})

	t.Run("returns empty list when there are no items", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{"", "<rss><channel><title>x</title></channel></rss>", "not xml at all"} {
			items := topicreader.ParseFeedItems(body)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		}
	})

	t.Run("returns empty list when every item is malformed", func(t *testing.T) {
		t.Parallel()

		body := `<item><title>a</title></item><item><link>https://x/t/abc</link></item>`

		assert.Empty(t, topicreader.ParseFeedItems(body))
	})

	t.Run("drops whitespace-only link", func(t *testing.T) {
		t.Parallel()

		body := "<item><title>a</title><link>  \n </link></item>"

		assert.Empty(t, topicreader.ParseFeedItems(body))
	})

	t.Run("derives topic ID from any surrounding path", func(t *testing.T) {
		t.Parallel()

		links := []string{
			"https://linux.do/t/topic/42",
			"https://linux.do/t/topic/42/3",
			"https://mirror.example/forum/t/slug/topic/42?u=bob",
			"/topic/42",
		}
		for _, link := range links {
			items := topicreader.ParseFeedItems("<item><link>" + link + "</link></item>")
			require.Len(t, items, 1, link)
			assert.Equal(t, "42", items[0].TopicID, link)
		}
	})

	t.Run("uses CDATA link", func(t *testing.T) {
		t.Parallel()

		items := topicreader.ParseFeedItems("<item><link><![CDATA[https://linux.do/t/topic/9]]></link></item>")

		require.Len(t, items, 1)
		assert.Equal(t, "9", items[0].TopicID)
	})

	t.Run("tolerates attributes and upper case item tags", func(t *testing.T) {
		t.Parallel()

		body := `<ITEM rdf:about="x"><link>https://linux.do/t/topic/1</link></ITEM>`

		items := topicreader.ParseFeedItems(body)

		require.Len(t, items, 1)
		assert.Equal(t, "1", items[0].TopicID)
	})

	t.Run("ignores unterminated trailing item", func(t *testing.T) {
		t.Parallel()

		body := "<item><link>https://linux.do/t/topic/1</link></item><item><link>https://linux.do/t/topic/2</link>"

		items := topicreader.ParseFeedItems(body)

		require.Len(t, items, 1)
		assert.Equal(t, "1", items[0].TopicID)
	})

	t.Run("defaults empty creator", func(t *testing.T) {
		t.Parallel()

		body := "<item><link>https://linux.do/t/topic/1</link><dc:creator></dc:creator></item>"

		items := topicreader.ParseFeedItems(body)

		require.Len(t, items, 1)
		assert.Equal(t, topicreader.DefaultCreator, items[0].Creator)
	})
}

func TestTopicID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123", topicreader.TopicID("https://linux.do/t/topic/123"))
	assert.Empty(t, topicreader.TopicID("https://linux.do/t/topic/"))
	assert.Empty(t, topicreader.TopicID("https://linux.do/topics/123"))
	assert.Empty(t, topicreader.TopicID(""))
}
