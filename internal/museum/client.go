package museum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vangogh/internal/logging"
)

// ErrNotFound is returned when the API has no object for an ID.
var ErrNotFound = errors.New("museum object not found")

// SearchResponse models the collection search payload.
type SearchResponse struct {
	Total     int     `json:"total"`
	ObjectIDs []int64 `json:"objectIDs"`
}

// Tag is one subject keyword attached to an object.
type Tag struct {
	Term        string `json:"term"`
	AATURL      string `json:"AAT_URL,omitempty"`
	WikidataURL string `json:"Wikidata_URL,omitempty"`
}

// Object is the subset of an object record the topic analysis needs.
type Object struct {
	ObjectID          int64  `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	Department        string `json:"department"`
	Tags              []Tag  `json:"tags"`
}

// ObjectCache stores object payloads between runs.
type ObjectCache interface {
	Lookup(ctx context.Context, id int64) (*Object, bool, error)
	Store(ctx context.Context, obj *Object) error
}

// Client provides access to the Metropolitan Museum collection API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      ObjectCache
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithCache serves objects from cache before asking the API.
func WithCache(cache ObjectCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger attaches a logger; the default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a collection API client.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("museum base url required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "museum")
	return client, nil
}

// Search returns the IDs of objects whose artist or culture matches query.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	params := url.Values{}
	params.Set("artistOrCulture", "true")
	params.Set("q", query)

	var payload SearchResponse
	if err := c.getJSON(ctx, "/search", params, &payload); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return &payload, nil
}

// Object fetches one object, consulting the cache first when configured.
func (c *Client) Object(ctx context.Context, id int64) (*Object, error) {
	if c.cache != nil {
		obj, ok, err := c.cache.Lookup(ctx, id)
		switch {
		case err != nil:
			logging.WarnWithContext(c.logger, "object cache lookup failed", "museum_cache_lookup_failed",
				logging.Int64("object_id", id),
				logging.Error(err),
				logging.String(logging.FieldImpact, "object fetched from the API instead"))
		case ok:
			c.logger.Debug("object cache hit", logging.Int64("object_id", id))
			return obj, nil
		default:
			c.logger.Debug("object cache miss", logging.Int64("object_id", id))
		}
	}

	var obj Object
	if err := c.getJSON(ctx, "/objects/"+strconv.FormatInt(id, 10), nil, &obj); err != nil {
		return nil, fmt.Errorf("object %d: %w", id, err)
	}

	if c.cache != nil {
		if err := c.cache.Store(ctx, &obj); err != nil {
			logging.WarnWithContext(c.logger, "object cache store failed", "museum_cache_store_failed",
				logging.Int64("object_id", id),
				logging.Error(err),
				logging.String(logging.FieldImpact, "object will be fetched again next run"))
		}
	}
	return &obj, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dst any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse museum url: %w", err)
	}
	if len(params) > 0 {
		endpoint.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("museum api returned %d (latency=%v)", resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode museum response: %w", err)
	}
	return nil
}
