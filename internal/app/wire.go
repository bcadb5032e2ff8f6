package app

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"reconx/internal/domain"
	"reconx/internal/report"
	"reconx/internal/services/dnsenum"
	"reconx/internal/services/fuzz"
	"reconx/internal/services/links"
	"reconx/internal/services/probe"
	"reconx/internal/services/scan"
	"reconx/internal/services/wayback"
	"reconx/internal/store"
	"reconx/internal/toolrunner"
	"reconx/internal/ui"
)

const defaultHTTPTimeout = 15 * time.Second

// Wire bundles all services, clients and stores for the CLI.
type Wire struct {
	Resolver domain.Resolver
	Archive  domain.ArchiveClient
	Prober   domain.Prober
	Fuzzer   domain.Fuzzer
	Links    domain.LinkFetcher
	Runner   domain.Runner
	Reports  domain.ReportStore
	History  domain.HistoryStore
	UI       *ui.Printer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	// One limiter shared across wayback, probe and fuzz traffic.
	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}

	// The fuzzer shares the configured transport and timeout but must not
	// follow redirects, so the hit itself is reported.
	fuzzClient := &http.Client{
		Transport: httpClient.Transport,
		Timeout:   httpClient.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	history, err := store.OpenHistory(cfg.Home)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Resolver: dnsenum.New(cfg.Resolver, cfg.dnsTimeout()),
		Archive:  wayback.NewClient(cfg.CDXBase, httpClient, cfg.UserAgent, limiter),
		Prober:   probe.New(httpClient, cfg.UserAgent, cfg.Concurrency, limiter),
		Fuzzer:   fuzz.New(fuzzClient, cfg.UserAgent, cfg.Concurrency, limiter, nil),
		Links:    links.New(httpClient, cfg.UserAgent),
		Runner:   toolrunner.New(cfg.ToolTimeout),
		Reports:  report.NewFileStore(),
		History:  history,
		UI:       ui.New(cfg.Quiet),
	}, nil
}

// Pipeline assembles the scan pipeline from the wired services.
func (w *Wire) Pipeline() *scan.Pipeline {
	return &scan.Pipeline{
		Resolver: w.Resolver,
		Archive:  w.Archive,
		Prober:   w.Prober,
		Links:    w.Links,
		Runner:   w.Runner,
		UI:       w.UI,
	}
}

// Close releases resources held by the wire.
func (w *Wire) Close() error {
	if w.History != nil {
		return w.History.Close()
	}
	return nil
}
