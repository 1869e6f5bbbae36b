package mediawiki_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
	"github.com/PamanGie/crawling-wikipedia/mediawiki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client pointed at the given handler with rate
// limiting effectively disabled.
func newTestClient(t *testing.T, handler http.HandlerFunc) *mediawiki.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return mediawiki.NewClient(
		mediawiki.WithEndpoint(server.URL),
		mediawiki.WithRequestsPerSecond(10000),
	)
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns top search result title", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "query", r.URL.Query().Get("action"))
			assert.Equal(t, "search", r.URL.Query().Get("list"))
			assert.Equal(t, "cloud computing", r.URL.Query().Get("srsearch"))
			fmt.Fprint(w, `{"query":{"search":[{"title":"Cloud computing"}]}}`)
		})

		title, err := client.Search(context.Background(), "cloud computing")

		require.NoError(t, err)
		assert.Equal(t, "Cloud computing", title)
	})

	t.Run("returns ENOTFOUND for empty results", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"query":{"search":[]}}`)
		})

		_, err := client.Search(context.Background(), "zxqv nonsense")

		assert.Equal(t, wikicrawl.ENOTFOUND, wikicrawl.ErrorCode(err))
	})

	t.Run("returns error for non-200 responses", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.Search(context.Background(), "anything")

		require.Error(t, err)
		assert.NotEqual(t, wikicrawl.ENOTFOUND, wikicrawl.ErrorCode(err))
	})

	t.Run("sends a user agent", func(t *testing.T) {
		t.Parallel()

		var agent string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			agent = r.Header.Get("User-Agent")
			fmt.Fprint(w, `{"query":{"search":[{"title":"T"}]}}`)
		})

		_, err := client.Search(context.Background(), "t")

		require.NoError(t, err)
		assert.Contains(t, agent, "wikicrawl")
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns plain text extract", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Cloud computing", r.URL.Query().Get("titles"))
			assert.Equal(t, "1", r.URL.Query().Get("explaintext"))
			fmt.Fprint(w, `{"query":{"pages":[{"title":"Cloud computing","extract":"Intro.\n== History ==\nIt began."}]}}`)
		})

		page, err := client.Fetch(context.Background(), "Cloud computing")

		require.NoError(t, err)
		assert.Equal(t, "Cloud computing", page.Title)
		assert.Equal(t, "Intro.\n== History ==\nIt began.", page.Content)
	})

	t.Run("returns ENOTFOUND for missing pages", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"query":{"pages":[{"title":"Nope","missing":true}]}}`)
		})

		_, err := client.Fetch(context.Background(), "Nope")

		assert.Equal(t, wikicrawl.ENOTFOUND, wikicrawl.ErrorCode(err))
	})

	t.Run("returns EAMBIGUOUS with alternatives for disambiguation pages", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("action") {
			case "query":
				fmt.Fprint(w, `{"query":{"pages":[{"title":"Mercury","pageprops":{"disambiguation":""}}]}}`)
			case "parse":
				assert.Equal(t, "Mercury", r.URL.Query().Get("page"))
				html := `<div><ul>` +
					`<li><a href="/wiki/Mercury_(planet)" title="Mercury (planet)">Mercury (planet)</a></li>` +
					`<li><a href="/wiki/Mercury_(element)" title="Mercury (element)">Mercury (element)</a></li>` +
					`<li><a href="/wiki/Help:Disambiguation" title="Help:Disambiguation">help</a></li>` +
					`</ul></div>`
				fmt.Fprintf(w, `{"parse":{"title":"Mercury","text":%q}}`, html)
			}
		})

		_, err := client.Fetch(context.Background(), "Mercury")

		assert.Equal(t, wikicrawl.EAMBIGUOUS, wikicrawl.ErrorCode(err))
		assert.Equal(t, []string{"Mercury (planet)", "Mercury (element)"}, wikicrawl.ErrorAlternatives(err))
	})

	t.Run("returns ENOTFOUND when the response has no pages", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"query":{"pages":[]}}`)
		})

		_, err := client.Fetch(context.Background(), "")

		assert.Equal(t, wikicrawl.ENOTFOUND, wikicrawl.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"query":{"pages":[]}}`)
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Fetch(ctx, "Anything")

		require.Error(t, err)
	})
}
