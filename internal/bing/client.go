// Package bing is a client for the Bing Web Search v7 API.
package bing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"websearch/internal/domain"
)

// ErrAPI is wrapped by every error Search returns. Callers treat all
// failures alike: transport errors, non-2xx statuses and bad bodies.
var ErrAPI = errors.New("search API error")

// SubscriptionKeyHeader carries the API key on every request
const SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 4 << 20

// Searcher fetches one page of web results
type Searcher interface {
	Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultSet, error)
}

// Options configures a Client
type Options struct {
	Endpoint   string // base URL, e.g. https://api.bing.microsoft.com/v7.0
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration // used when HTTPClient is nil
	UserAgent  string
}

// Client queries the Bing Web Search API
type Client struct {
	endpoint  string
	apiKey    string
	http      *http.Client
	userAgent string
}

// Response is the subset of the Bing response body the client reads
type Response struct {
	WebPages *WebPages `json:"webPages"`
}

// WebPages holds the web page answer
type WebPages struct {
	TotalEstimatedMatches int                       `json:"totalEstimatedMatches"`
	Value                 []domain.SearchResultItem `json:"value"`
}

// New creates a client from explicit options
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		endpoint:  strings.TrimRight(opts.Endpoint, "/"),
		apiKey:    opts.APIKey,
		http:      httpClient,
		userAgent: opts.UserAgent,
	}
}

// Search performs one GET for the query's term, count and offset.
// Offsets are zero-based: page 1 requests offset 0.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultSet, error) {
	req, err := c.newRequest(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrAPI, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", ErrAPI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: HTTP %d", ErrAPI, resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: parsing response: %v", ErrAPI, err)
	}

	return body.ResultSet(), nil
}

// ResultSet converts the response into a domain result set.
// A response without a webPages answer is an empty set.
func (r Response) ResultSet() *domain.SearchResultSet {
	set := &domain.SearchResultSet{Items: []domain.SearchResultItem{}}
	if r.WebPages == nil {
		return set
	}
	if r.WebPages.Value != nil {
		set.Items = r.WebPages.Value
	}
	if r.WebPages.TotalEstimatedMatches > 0 {
		set.TotalEstimated = r.WebPages.TotalEstimatedMatches
	}
	return set
}

func (c *Client) newRequest(ctx context.Context, query domain.SearchQuery) (*http.Request, error) {
	perPage := query.PerPage
	if perPage <= 0 {
		perPage = domain.PerPage
	}

	params := url.Values{
		"q":              {query.Term},
		"count":          {strconv.Itoa(perPage)},
		"offset":         {strconv.Itoa(domain.Offset(query.Page, perPage))},
		"responseFilter": {"webpages"},
	}

	reqURL := c.endpoint + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(SubscriptionKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}
