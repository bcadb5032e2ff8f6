package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"reconx/internal/domain"
)

const (
	defaultConcurrency = 25
	defaultTimeout     = 15 * time.Second
)

// Service probes URLs over HTTP.
type Service struct {
	HTTP        *http.Client
	UserAgent   string
	Concurrency int

	limiter *rate.Limiter
}

// New returns a prober. A nil httpClient gets a client with the default
// timeout; concurrency <= 0 uses the default of 25.
func New(httpClient *http.Client, userAgent string, concurrency int, limiter *rate.Limiter) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Service{HTTP: httpClient, UserAgent: userAgent, Concurrency: concurrency, limiter: limiter}
}

// Filter returns only the http(s) URLs from urls, order preserved.
func Filter(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			out = append(out, u)
		}
	}
	return out
}

// Check probes every URL concurrently. The result slice matches the input
// order; a per-URL failure becomes an entry with Error set, never an error
// for the whole batch. Only context cancellation aborts.
func (s *Service) Check(ctx context.Context, urls []string) ([]domain.URLCheck, error) {
	results := make([]domain.URLCheck, len(urls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for i, u := range urls {
		g.Go(func() error {
			if s.limiter != nil {
				if err := s.limiter.Wait(ctx); err != nil {
					return err
				}
			}
			results[i] = s.checkOne(ctx, u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// checkOne tries HEAD first and falls back to GET, since some servers
// reject or mishandle HEAD.
func (s *Service) checkOne(ctx context.Context, u string) domain.URLCheck {
	check, err := s.request(ctx, http.MethodHead, u)
	if err == nil {
		return check
	}
	if ctx.Err() != nil {
		return domain.URLCheck{URL: u, Error: ctx.Err().Error()}
	}
	check, err = s.request(ctx, http.MethodGet, u)
	if err != nil {
		return domain.URLCheck{URL: u, Error: err.Error()}
	}
	return check
}

func (s *Service) request(ctx context.Context, method, u string) (domain.URLCheck, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return domain.URLCheck{}, err
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return domain.URLCheck{}, err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	return domain.URLCheck{
		URL:      u,
		Status:   resp.StatusCode,
		FinalURL: resp.Request.URL.String(),
	}, nil
}

var _ domain.Prober = (*Service)(nil)
