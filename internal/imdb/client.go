// Package imdb implements the metadata lookup contract against the IMDb
// suggestion API. The API is keyless and returns ranked suggestions; the
// ranking is trusted as-is by the matcher.
package imdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leoventa/shelfmark/internal/metadata"
)

const defaultBaseURL = "https://v2.sg.media-imdb.com"

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// suggestion is one entry of the suggestion payload.
type suggestion struct {
	ID    string `json:"id"`  // "tt1375666"
	Title string `json:"l"`   // display title
	Year  int    `json:"y"`   // release year
	Kind  string `json:"qid"` // "movie", "tvSeries", "tvMiniSeries", ...
}

type suggestionResponse struct {
	Suggestions []suggestion `json:"d"`
}

// SearchByTitle queries the suggestion endpoint and returns results in
// the order the provider ranked them. Entries without a tt identifier
// (people, keywords) are dropped.
func (c *Client) SearchByTitle(title string) ([]metadata.SearchResult, error) {
	resp, err := c.suggest(title)
	if err != nil {
		return nil, err
	}

	var results []metadata.SearchResult
	for _, s := range resp.Suggestions {
		id, ok := strings.CutPrefix(s.ID, "tt")
		if !ok {
			continue
		}
		results = append(results, metadata.SearchResult{
			ID:    id,
			Title: s.Title,
			Year:  s.Year,
			Kind:  providerKind(s.Kind),
		})
	}

	return results, nil
}

// FetchByID resolves one identifier through the suggestion endpoint,
// which accepts tt ids as queries. Returns metadata.ErrNotFound when the
// id resolves to nothing.
func (c *Client) FetchByID(id string) (*metadata.Details, error) {
	ref := "tt" + id
	resp, err := c.suggest(ref)
	if err != nil {
		return nil, err
	}

	for _, s := range resp.Suggestions {
		if s.ID != ref {
			continue
		}
		return &metadata.Details{
			ID:    id,
			Title: s.Title,
			Year:  s.Year,
			Kind:  providerKind(s.Kind),
		}, nil
	}

	return nil, fmt.Errorf("fetching %s: %w", ref, metadata.ErrNotFound)
}

func (c *Client) suggest(query string) (*suggestionResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}

	// The endpoint shards by the first character of the query.
	shard := strings.ToLower(query[:1])
	endpoint := fmt.Sprintf("%s/suggestion/%s/%s.json",
		c.baseURL, url.PathEscape(shard), url.PathEscape(query))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("suggestion API error (status %d)", resp.StatusCode)
	}

	var payload suggestionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &payload, nil
}

// providerKind maps the API's kind strings onto the vocabulary the
// matcher filters on.
func providerKind(qid string) string {
	switch qid {
	case "movie", "feature":
		return metadata.ProviderKindMovie
	case "tvSeries":
		return metadata.ProviderKindTVSeries
	case "tvMiniSeries":
		return metadata.ProviderKindTVMiniSeries
	default:
		return qid
	}
}
