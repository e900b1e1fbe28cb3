package tmdb

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

	"github.com/google/uuid"

	"github.com/Waddenn/movie-detail/internal/movie"
)

var (
	ErrNotFound  = errors.New("tmdb: movie not found")
	ErrInvalidID = errors.New("tmdb: invalid movie id")
)

// APIError is a non-2xx answer from TMDB.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("tmdb api error: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("tmdb api error: %d", e.StatusCode)
}

type Options struct {
	BaseURL     string
	APIKey      string // v3 key, sent as api_key
	AccessToken string // v4 read token, sent as Bearer
	Language    string
	UserAgent   string
	Timeout     time.Duration
	RetryMax    int
}

type Client struct {
	BaseURL     string
	APIKey      string
	AccessToken string
	Language    string
	Client      *http.Client
}

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:     strings.TrimRight(opts.BaseURL, "/"),
		APIKey:      opts.APIKey,
		AccessToken: opts.AccessToken,
		Language:    opts.Language,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: NewTransport(http.DefaultTransport, opts.UserAgent, opts.RetryMax),
		},
	}
}

type statusBody struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// MovieDetail fetches GET /movie/{id}.
func (c *Client) MovieDetail(ctx context.Context, id string) (*movie.Detail, error) {
	id = strings.TrimSpace(id)
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	q := url.Values{}
	if c.Language != "" {
		q.Set("language", c.Language)
	}
	endpoint := fmt.Sprintf("%s/movie/%s", c.BaseURL, url.PathEscape(id))

	var d movie.Detail
	if err := c.getJSON(ctx, endpoint, q, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, target interface{}) error {
	if c.APIKey != "" && c.AccessToken == "" {
		q.Set("api_key", c.APIKey)
	}
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", RequestID(ctx))
	if c.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var sb statusBody
		if json.Unmarshal(body, &sb) == nil {
			apiErr.Message = sb.StatusMessage
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}

type requestIDKey struct{}

// WithRequestID tags ctx so the outgoing request carries id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or a fresh one.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
