// Package auction queries a public SkyBlock auction API for lowest BIN prices.
package auction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.slothpixel.me/api/skyblock/auctions"
	DefaultTimeout = 10 * time.Second
)

var ErrMalformedResponse = errors.New("malformed auction response")

// Client fetches Buy It Now listings.
type Client struct {
	baseURL  string
	client   *http.Client
	category string
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithCategory sets the auction category filter.
func WithCategory(category string) ClientOption {
	return func(c *Client) {
		c.category = category
	}
}

// NewClient creates a client for the auctions endpoint at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: DefaultTimeout},
		category: "accessories",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// auctionsResponse is the subset of the API response we read.
type auctionsResponse struct {
	MatchingQuery *int64 `json:"matching_query"`
	Auctions      []struct {
		StartingBid *int64 `json:"starting_bid"`
	} `json:"auctions"`
}

// LowestBIN returns the cheapest Buy It Now price of itemID. found is false
// when nobody is selling the item.
func (c *Client) LowestBIN(ctx context.Context, itemID string) (price int64, found bool, err error) {
	q := url.Values{}
	q.Set("limit", "1")
	q.Set("page", "1")
	q.Set("sortOrder", "asc")
	q.Set("sortBy", "starting_bid")
	q.Set("id", itemID)
	q.Set("bin", "true")
	if c.category != "" {
		q.Set("category", c.category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json; charset=utf-8")
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, false, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, false, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, false, fmt.Errorf("unexpected status %d for %s: %s", resp.StatusCode, itemID, string(body))
	}

	var r auctionsResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return 0, false, fmt.Errorf("unmarshal response for %s: %w", itemID, err)
	}
	if r.MatchingQuery == nil {
		return 0, false, fmt.Errorf("%w: no matching_query field for %s", ErrMalformedResponse, itemID)
	}
	if *r.MatchingQuery < 1 {
		return 0, false, nil
	}
	if len(r.Auctions) == 0 {
		return 0, false, fmt.Errorf("%w: matching_query is %d but auctions is empty for %s",
			ErrMalformedResponse, *r.MatchingQuery, itemID)
	}
	if r.Auctions[0].StartingBid == nil {
		return 0, false, fmt.Errorf("%w: no starting_bid field for %s", ErrMalformedResponse, itemID)
	}
	return *r.Auctions[0].StartingBid, true, nil
}

// LowestBINs fetches the lowest BIN of every id concurrently. Items nobody
// sells are absent from the map, and so are items whose request failed.
// A failed request does not stop the others; the returned error joins every
// failure and the map still holds the prices that were fetched.
func (c *Client) LowestBINs(ctx context.Context, ids []string) (map[string]int64, error) {
	prices := make([]int64, len(ids))
	found := make([]bool, len(ids))
	errs := make([]error, len(ids))

	var g errgroup.Group
	g.SetLimit(max(len(ids), 1))
	for i, id := range ids {
		g.Go(func() error {
			prices[i], found[i], errs[i] = c.LowestBIN(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]int64, len(ids))
	for i, id := range ids {
		if errs[i] == nil && found[i] {
			out[id] = prices[i]
		}
	}
	return out, errors.Join(errs...)
}

// MasterSkullID returns the item id of a Master Skull tier.
func MasterSkullID(tier int) string {
	return "MASTER_SKULL_TIER_" + strconv.Itoa(tier)
}
