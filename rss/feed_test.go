package rss_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/topicreader"
	trhttp "github.com/fwojciec/topicreader/http"
	"github.com/fwojciec/topicreader/mock"
	"github.com/fwojciec/topicreader/rss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const developFeed = `<rss><channel>
<item>
  <title><![CDATA[First]]></title>
  <link>https://linux.do/t/topic/100</link>
  <dc:creator>bob</dc:creator>
</item>
<item>
  <title>Broken</title>
</item>
<item>
  <title>Second</title>
  <link>https://linux.do/t/topic/101</link>
</item>
</channel></rss>`

func TestFeedService_FindFeedItems(t *testing.T) {
	t.Parallel()

	t.Run("fetches category file and parses items", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(developFeed))
		}))
		defer server.Close()

		svc := rss.NewFeedService(trhttp.NewFetcher(), server.URL+"/feeds/", nil)

		items, err := svc.FindFeedItems(context.Background(), "develop")

		require.NoError(t, err)
		assert.Equal(t, "/feeds/develop.xml", gotPath)
		require.Len(t, items, 2)
		assert.Equal(t, "100", items[0].TopicID)
		assert.Equal(t, "bob", items[0].Creator)
		assert.Equal(t, "101", items[1].TopicID)
	})

	t.Run("returns not found for unknown category without fetching", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, headers map[string]string) (string, error) {
				t.Fatal("fetch should not be called")
				return "", nil
			},
		}

		_, err := rss.NewFeedService(fetcher, "https://feeds.local", nil).FindFeedItems(context.Background(), "missing")

		assert.Equal(t, topicreader.ENOTFOUND, topicreader.ErrorCode(err))
	})

	t.Run("propagates transport errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, headers map[string]string) (string, error) {
				return "", &topicreader.TransportError{URL: url, StatusCode: 404}
			},
		}

		_, err := rss.NewFeedService(fetcher, "https://feeds.local", nil).FindFeedItems(context.Background(), "news")

		require.Error(t, err)
		assert.Equal(t, topicreader.EUNAVAILABLE, topicreader.ErrorCode(err))
		assert.Contains(t, err.Error(), "news")
	})

	t.Run("returns empty list for feed without items", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, headers map[string]string) (string, error) {
				return "<rss><channel></channel></rss>", nil
			},
		}

		items, err := rss.NewFeedService(fetcher, "https://feeds.local", nil).FindFeedItems(context.Background(), "news")

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("uses custom categories", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string, headers map[string]string) (string, error) {
				gotURL = url
				return "", nil
			},
		}
		categories := []topicreader.Category{{Slug: "ai", Name: "AI", File: "/c/ai.rss"}}

		_, err := rss.NewFeedService(fetcher, "https://feeds.local/", categories).FindFeedItems(context.Background(), "ai")

		require.NoError(t, err)
		assert.Equal(t, "https://feeds.local/c/ai.rss", gotURL)
	})
}
