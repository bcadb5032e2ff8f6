package fuzz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"reconx/internal/domain"
)

const (
	defaultConcurrency = 10
	defaultTimeout     = 10 * time.Second
)

// Service runs wordlist scans.
type Service struct {
	HTTP        *http.Client
	UserAgent   string
	Concurrency int

	limiter  *rate.Limiter
	filtered map[int]struct{}
}

// New returns a fuzzer. filterStatus lists response codes to suppress; nil
// defaults to {404}.
func New(httpClient *http.Client, userAgent string, concurrency int, limiter *rate.Limiter, filterStatus []int) *Service {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
			// Report the hit itself, not where it redirects to.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if filterStatus == nil {
		filterStatus = []int{http.StatusNotFound}
	}
	filtered := make(map[int]struct{}, len(filterStatus))
	for _, code := range filterStatus {
		filtered[code] = struct{}{}
	}
	return &Service{
		HTTP:        httpClient,
		UserAgent:   userAgent,
		Concurrency: concurrency,
		limiter:     limiter,
		filtered:    filtered,
	}
}

// LoadWordlist reads one path per line, skipping blanks and # comments.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist %s: %w", path, err)
	}
	return words, nil
}

// Run requests every word under baseURL and returns unfiltered responses
// sorted by URL. Per-request failures are skipped; only context
// cancellation aborts the scan.
func (s *Service) Run(ctx context.Context, baseURL string, words []string) ([]domain.FuzzHit, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("base url %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	var (
		mu   sync.Mutex
		hits []domain.FuzzHit
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for _, word := range words {
		g.Go(func() error {
			if s.limiter != nil {
				if err := s.limiter.Wait(ctx); err != nil {
					return err
				}
			}
			hit, ok := s.tryPath(ctx, base, word)
			if ok {
				mu.Lock()
				hits = append(hits, hit)
				mu.Unlock()
			}
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].URL < hits[j].URL })
	return hits, nil
}

func (s *Service) tryPath(ctx context.Context, base *url.URL, word string) (domain.FuzzHit, bool) {
	u := base.JoinPath(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.FuzzHit{}, false
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return domain.FuzzHit{}, false
	}
	defer resp.Body.Close()
	size, _ := io.Copy(io.Discard, resp.Body)

	if _, skip := s.filtered[resp.StatusCode]; skip {
		return domain.FuzzHit{}, false
	}
	return domain.FuzzHit{URL: u.String(), Status: resp.StatusCode, Size: size}, true
}

var _ domain.Fuzzer = (*Service)(nil)
