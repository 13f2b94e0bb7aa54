// Package feed fetches and decodes openfootball JSON documents.
package feed

import (
	"context"
	"io"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 8 << 20

// ErrUnexpectedStatus is returned when the feed server answers with a non-2xx status.
var ErrUnexpectedStatus = crerr.New("unexpected feed response status")

// ClientConfig configures a feed Client.
type ClientConfig struct {
	HTTPClient *http.Client
	// Timeout bounds a single request. Zero disables the timeout.
	Timeout   time.Duration
	UserAgent string
}

// Client downloads feed documents over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
	validate   *validator.Validate
}

// NewClient creates a feed client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		validate:   validator.New(),
	}
}

// FetchClubs downloads and validates a clubs document.
func (c *Client) FetchClubs(ctx context.Context, url string) (*ClubsDocument, error) {
	var doc ClubsDocument
	if err := c.fetch(ctx, url, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// FetchMatches downloads and validates a matches document.
func (c *Client) FetchMatches(ctx context.Context, url string) (*MatchesDocument, error) {
	var doc MatchesDocument
	if err := c.fetch(ctx, url, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) fetch(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return crerr.Wrapf(err, "build request for %s", url)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crerr.Wrapf(err, "fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return crerr.Wrapf(ErrUnexpectedStatus, "fetch %s: status %d", url, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return crerr.Wrapf(err, "read body of %s", url)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s", url)
	}

	if err := c.validate.StructCtx(ctx, target); err != nil {
		return crerr.Wrapf(err, "validate %s", url)
	}
	return nil
}
