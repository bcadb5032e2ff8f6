package wayback

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

	"github.com/juju/clock"
	"github.com/juju/retry"
	"golang.org/x/time/rate"

	"reconx/internal/domain"
)

// DefaultBase is the Internet Archive CDX endpoint.
const DefaultBase = "http://web.archive.org"

const (
	defaultLimit  = 500
	retryAttempts = 3
	retryDelay    = 500 * time.Millisecond
)

// Client queries the CDX API.
type Client struct {
	Base      string
	HTTP      *http.Client
	UserAgent string

	limiter *rate.Limiter
}

// NewClient returns a CDX client. A nil httpClient uses http.DefaultClient;
// a nil limiter disables client-side rate limiting.
func NewClient(base string, httpClient *http.Client, userAgent string, limiter *rate.Limiter) *Client {
	if base == "" {
		base = DefaultBase
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient, UserAgent: userAgent, limiter: limiter}
}

// URLs returns up to limit unique archived URLs for target, oldest capture
// first as the CDX API yields them.
func (c *Client) URLs(ctx context.Context, target domain.Target, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	q.Set("url", target.String()+"/*")
	q.Set("output", "json")
	q.Set("fl", "original")
	q.Set("collapse", "urlkey")
	q.Set("limit", strconv.Itoa(limit))
	endpoint := c.Base + "/cdx/search/cdx?" + q.Encode()

	var body []byte
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			var err error
			body, err = c.fetch(ctx, endpoint)
			return err
		},
		IsFatalError: func(err error) bool { return !isTransient(err) },
		Attempts:     retryAttempts,
		Delay:        retryDelay,
		BackoffFunc:  retry.DoubleDelay,
		Clock:        clock.WallClock,
		Stop:         ctx.Done(),
	})
	if err != nil {
		return nil, fmt.Errorf("cdx query for %s: %w", target, err)
	}

	urls, err := parseCDX(body)
	if err != nil {
		return nil, fmt.Errorf("cdx response for %s: %w", target, err)
	}
	return Dedupe(urls, limit), nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}
	return io.ReadAll(resp.Body)
}

// parseCDX decodes the array-of-arrays body, skipping the header row.
func parseCDX(body []byte) ([]string, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	var rows [][]string
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, err
	}
	var urls []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if i == 0 && row[0] == "original" {
			continue
		}
		urls = append(urls, row[0])
	}
	return urls, nil
}

// FromTool parses waybackurls stdout, one URL per line.
func FromTool(res domain.ToolResult) []string {
	var urls []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}

// Dedupe removes duplicates preserving first-seen order and caps the result
// at limit (<= 0 means no cap).
func Dedupe(urls []string, limit int) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string { return "cdx: " + e.status }

// isTransient reports whether the request is worth retrying: network errors,
// 429 and 5xx responses.
func isTransient(err error) bool {
	var se *statusError
	if !errors.As(err, &se) {
		return true
	}
	return se.code == http.StatusTooManyRequests || se.code >= 500
}

var _ domain.ArchiveClient = (*Client)(nil)
