// Package mediawiki provides a wikicrawl.Lookup backed by the MediaWiki
// action API. It resolves topics with full-text search, fetches plain-text
// extracts (which use the "== Heading ==" convention the section parser
// consumes), and reports disambiguation pages as ambiguous lookups with
// the candidate titles.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// DefaultEndpoint is the English Wikipedia action API. The source locale
// is fixed; other languages are out of scope.
const DefaultEndpoint = "https://en.wikipedia.org/w/api.php"

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// DefaultRequestsPerSecond matches the polite one-call-per-second pace
// the API documentation asks of unauthenticated batch clients.
const DefaultRequestsPerSecond = 1.0

const defaultUserAgent = "wikicrawl/1.0 (dataset construction; github.com/PamanGie/crawling-wikipedia)"

// Ensure Client implements wikicrawl.Lookup at compile time.
var _ wikicrawl.Lookup = (*Client)(nil)

// Client talks to a MediaWiki action API endpoint. All requests pass
// through a shared rate limiter.
type Client struct {
	endpoint  string
	client    *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint points the client at a different api.php endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRequestsPerSecond sets the API rate limit.
// Defaults to DefaultRequestsPerSecond if not specified.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new MediaWiki API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:  DefaultEndpoint,
		timeout:   DefaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1)
	}
	c.client = &http.Client{Timeout: c.timeout}

	return c
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type pagesResponse struct {
	Query struct {
		Pages []struct {
			Title     string `json:"title"`
			Missing   bool   `json:"missing"`
			Extract   string `json:"extract"`
			PageProps struct {
				Disambiguation *string `json:"disambiguation"`
			} `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
}

type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
}

// Search returns the top full-text search result for a topic.
func (c *Client) Search(ctx context.Context, topic string) (string, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {topic},
		"srlimit":  {"1"},
	}

	var res searchResponse
	if err := c.get(ctx, params, &res); err != nil {
		return "", err
	}

	if len(res.Query.Search) == 0 {
		return "", wikicrawl.Errorf(wikicrawl.ENOTFOUND, "no search results for %q", topic)
	}
	return res.Query.Search[0].Title, nil
}

// Fetch returns the plain-text extract for an exact title. Redirects are
// followed. A missing page yields ENOTFOUND; a disambiguation page yields
// EAMBIGUOUS with the candidate titles scraped from its link list.
func (c *Client) Fetch(ctx context.Context, title string) (*wikicrawl.Page, error) {
	params := url.Values{
		"action":      {"query"},
		"prop":        {"extracts|pageprops"},
		"ppprop":      {"disambiguation"},
		"explaintext": {"1"},
		"redirects":   {"1"},
		"titles":      {title},
	}

	var res pagesResponse
	if err := c.get(ctx, params, &res); err != nil {
		return nil, err
	}

	if len(res.Query.Pages) == 0 {
		return nil, wikicrawl.Errorf(wikicrawl.ENOTFOUND, "page %q does not exist", title)
	}
	page := res.Query.Pages[0]

	if page.Missing {
		return nil, wikicrawl.Errorf(wikicrawl.ENOTFOUND, "page %q does not exist", title)
	}

	if page.PageProps.Disambiguation != nil {
		alternatives, err := c.alternatives(ctx, page.Title)
		if err != nil {
			return nil, err
		}
		return nil, wikicrawl.Ambiguousf(alternatives, "title %q is a disambiguation page", page.Title)
	}

	return &wikicrawl.Page{Title: page.Title, Content: page.Extract}, nil
}

// alternatives fetches the rendered disambiguation page and extracts the
// linked article titles from its list items.
func (c *Client) alternatives(ctx context.Context, title string) ([]string, error) {
	params := url.Values{
		"action": {"parse"},
		"page":   {title},
		"prop":   {"text"},
	}

	var res parseResponse
	if err := c.get(ctx, params, &res); err != nil {
		return nil, err
	}

	return extractAlternatives(res.Parse.Text)
}

// extractAlternatives pulls candidate article titles out of a rendered
// disambiguation page. Links in other namespaces (Help:, Category:, ...)
// are skipped.
func extractAlternatives(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var alternatives []string
	seen := make(map[string]struct{})

	doc.Find("ul li a").Each(func(_ int, s *goquery.Selection) {
		title, ok := s.Attr("title")
		if !ok || title == "" {
			return
		}
		if strings.Contains(title, ":") {
			return
		}
		if _, dup := seen[title]; dup {
			return
		}
		seen[title] = struct{}{}
		alternatives = append(alternatives, title)
	})

	return alternatives, nil
}

// get performs one rate-limited API call and decodes the JSON response.
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.endpoint)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
