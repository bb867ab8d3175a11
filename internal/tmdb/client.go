package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/justestif/go-movie-mood-recommender/internal/logging"
)

const (
	baseURL      = "https://api.themoviedb.org/3"
	imageBaseURL = "https://image.tmdb.org/t/p"
	userAgent    = "moodreel/1.0"
)

// Sentinel errors.
var (
	// ErrRateLimited is returned when the API rate limit is exceeded after retries.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNotFound is returned for unknown movie IDs.
	ErrNotFound = errors.New("movie not found")

	// ErrUnauthorized is returned when the credentials are rejected.
	ErrUnauthorized = errors.New("invalid TMDB credentials")

	// ErrServer is returned when TMDB keeps failing with 5xx after retries.
	ErrServer = errors.New("TMDB server error")
)

// Client is a TMDB API client with rate limiting, retries and a detail cache.
type Client struct {
	apiKey      string
	httpClient  *http.Client
	baseURL     string
	limiter     *rate.Limiter
	retryDelays []time.Duration

	// In-memory cache keyed by TMDB movie ID
	cache   map[int]*MovieDetails
	cacheMu sync.RWMutex
}

// NewClient creates a new TMDB client from the provided configuration.
// A read token is sent as a bearer token, otherwise the API key is passed as a
// query parameter.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	apiKey := cfg.APIKey
	if cfg.ReadToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.ReadToken, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = 30 * time.Second
		apiKey = ""
	}

	rps := cfg.RequestsPerSecond
	if rps == 0 {
		rps = DefaultRequestsPerSecond
	}

	return &Client{
		apiKey:      apiKey,
		httpClient:  httpClient,
		baseURL:     baseURL,
		limiter:     rate.NewLimiter(rate.Limit(rps), 1),
		retryDelays: []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
		cache:       make(map[int]*MovieDetails),
	}, nil
}

// Popular returns one page of currently popular movies.
func (c *Client) Popular(ctx context.Context, page int) (*Page, error) {
	return c.listing(ctx, "movie/popular", page)
}

// TopRated returns one page of top rated movies.
func (c *Client) TopRated(ctx context.Context, page int) (*Page, error) {
	return c.listing(ctx, "movie/top_rated", page)
}

func (c *Client) listing(ctx context.Context, endpoint string, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	body, err := c.doRequest(ctx, endpoint, url.Values{"page": {strconv.Itoa(page)}})
	if err != nil {
		return nil, fmt.Errorf("fetching %s page %d: %w", endpoint, page, err)
	}

	var resp Page
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	if resp.Results == nil {
		resp.Results = []MovieSummary{}
	}
	return &resp, nil
}

// MovieDetails fetches full details for a movie (cached).
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	// Check cache
	c.cacheMu.RLock()
	if cached, ok := c.cache[id]; ok {
		c.cacheMu.RUnlock()
		return cached, nil
	}
	c.cacheMu.RUnlock()

	params := url.Values{"append_to_response": {"credits,keywords,videos,reviews"}}
	body, err := c.doRequest(ctx, "movie/"+strconv.Itoa(id), params)
	if err != nil {
		return nil, fmt.Errorf("fetching movie %d: %w", id, err)
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("parsing movie %d: %w", id, err)
	}

	// Cache result
	c.cacheMu.Lock()
	c.cache[id] = &details
	c.cacheMu.Unlock()

	return &details, nil
}

// doRequest performs a rate-limited GET with retry on 429 and 5xx responses.
// Retries up to 3 times with exponential backoff (1s, 2s, 4s).
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	reqURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt <= len(c.retryDelays); attempt++ {
		// Wait before retry (skip on first attempt)
		if attempt > 0 {
			logging.Ctx(ctx).Debug().
				Str("endpoint", endpoint).
				Int("attempt", attempt).
				Err(lastErr).
				Msg("retrying TMDB request")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelays[attempt-1]):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.doSingleRequest(ctx, reqURL)
		if err == nil {
			return body, nil
		}

		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServer) {
			lastErr = err
			continue
		}

		// Non-retryable error
		return nil, err
	}

	return nil, lastErr
}

// doSingleRequest performs a single HTTP request and maps status codes.
func (c *Client) doSingleRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.StatusMessage != "" {
		return nil, fmt.Errorf("API error %d: %s", apiErr.StatusCode, apiErr.StatusMessage)
	}
	return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
}
