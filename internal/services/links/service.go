package links

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/html"

	"reconx/internal/domain"
)

const (
	defaultTimeout = 8 * time.Second
	// DefaultMax caps how many hrefs a single page contributes.
	DefaultMax = 200
)

// Service fetches pages and pulls out anchor targets.
type Service struct {
	HTTP      *http.Client
	UserAgent string
}

func New(httpClient *http.Client, userAgent string) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Service{HTTP: httpClient, UserAgent: userAgent}
}

// Links fetches pageURL and returns up to max anchor hrefs in document
// order. max <= 0 uses DefaultMax.
func (s *Service) Links(ctx context.Context, pageURL string, max int) ([]string, error) {
	if max <= 0 {
		max = DefaultMax
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", pageURL, resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	var hrefs []string
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.Data != "a" {
			continue
		}
		for _, attr := range n.Attr {
			if attr.Key == "href" && attr.Val != "" {
				hrefs = append(hrefs, attr.Val)
				break
			}
		}
		if len(hrefs) >= max {
			break
		}
	}
	return hrefs, nil
}

var _ domain.LinkFetcher = (*Service)(nil)
