package domain

import "context"

// Resolver enumerates DNS records for a target.
type Resolver interface {
	// Enumerate queries every type in RecordTypes. Per-type failures yield
	// an empty entry rather than an error; only a total failure errors.
	Enumerate(ctx context.Context, target Target) (RecordSet, error)

	// Lookup queries a single record type.
	Lookup(ctx context.Context, target Target, rtype string) ([]string, error)
}

// ArchiveClient collects historical URLs for a target.
type ArchiveClient interface {
	URLs(ctx context.Context, target Target, limit int) ([]string, error)
}

// Prober checks URLs for liveness.
type Prober interface {
	Check(ctx context.Context, urls []string) ([]URLCheck, error)
}

// Fuzzer brute-forces paths from a wordlist against a base URL.
type Fuzzer interface {
	Run(ctx context.Context, baseURL string, words []string) ([]FuzzHit, error)
}

// LinkFetcher extracts anchor hrefs from a page.
type LinkFetcher interface {
	Links(ctx context.Context, pageURL string, max int) ([]string, error)
}

// Runner executes external helper binaries (dig, nslookup, waybackurls).
type Runner interface {
	Run(ctx context.Context, binary string, args ...string) (ToolResult, error)
}

// ReportStore persists finished reports.
type ReportStore interface {
	Write(path string, r *Report) error
	Read(path string) (*Report, error)
}

// HistoryStore keeps a record of past scans.
type HistoryStore interface {
	Record(ctx context.Context, s Summary) error
	Recent(ctx context.Context, limit int) ([]Summary, error)
	Prune(ctx context.Context, keep int) error
	Close() error
}
