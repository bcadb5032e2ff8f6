package domain

import (
	"fmt"
	"strings"
	"time"
)

// RecordTypes lists the DNS record types enumerated for a target, in the
// order they appear in reports.
var RecordTypes = []string{"A", "AAAA", "NS", "MX", "TXT", "CNAME", "SOA"}

// Target is a validated domain name.
type Target string

// ParseTarget normalises and validates a user-supplied domain. It strips a
// scheme prefix and trailing dot, lowercases, and rejects anything that is
// not a plausible hostname.
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, ".")
	s = strings.ToLower(s)
	if s == "" {
		return "", fmt.Errorf("empty target domain")
	}
	if len(s) > 253 {
		return "", fmt.Errorf("target %q: name too long", s)
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" {
			return "", fmt.Errorf("target %q: empty label", s)
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= '0' && r <= '9':
			case r == '-' || r == '_':
			default:
				return "", fmt.Errorf("target %q: invalid character %q", s, r)
			}
		}
	}
	return Target(s), nil
}

func (t Target) String() string { return string(t) }

// RecordSet maps a DNS record type to its rendered values. A type that
// returned no answers is present with an empty slice.
type RecordSet map[string][]string

// URLCheck is the outcome of probing a single URL for liveness.
type URLCheck struct {
	URL      string `json:"url"`
	Status   int    `json:"status,omitempty"`
	FinalURL string `json:"final_url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Alive reports whether the probe reached the server at all.
func (c URLCheck) Alive() bool { return c.Status != 0 }

// FuzzHit is a wordlist path that did not come back filtered.
type FuzzHit struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Size   int64  `json:"size"`
}

// ToolResult captures one external helper invocation.
type ToolResult struct {
	Binary   string   `json:"binary"`
	Args     []string `json:"args,omitempty"`
	ExitCode int      `json:"exit_code"`
	Stdout   string   `json:"stdout,omitempty"`
	Stderr   string   `json:"stderr,omitempty"`
}

// Wayback URL sources recorded in Report.WaybackSource.
const (
	WaybackSourceCDX    = "cdx_api"
	WaybackSourceBinary = "waybackurls"
)

// Report is the structured result of a scan, serialised to JSON.
type Report struct {
	Domain        string                `json:"domain"`
	StartedAt     time.Time             `json:"timestamp"`
	DNS           RecordSet             `json:"dns"`
	Wayback       []string              `json:"wayback"`
	WaybackSource string                `json:"wayback_source,omitempty"`
	WaybackCheck  []URLCheck            `json:"wayback_check"`
	Links         []string              `json:"basic_links_https,omitempty"`
	FuzzHits      []FuzzHit             `json:"fuzz_hits,omitempty"`
	External      map[string]ToolResult `json:"external,omitempty"`
	Errors        []string              `json:"errors,omitempty"`
}

// NewReport returns an empty report for domain with the clock started.
func NewReport(domain Target) *Report {
	// Wayback and WaybackCheck serialise as [] even when a stage fails,
	// so the JSON shape is stable for consumers.
	return &Report{
		Domain:       domain.String(),
		StartedAt:    time.Now().UTC(),
		DNS:          RecordSet{},
		Wayback:      []string{},
		WaybackCheck: []URLCheck{},
		External:     map[string]ToolResult{},
	}
}

// AddError records a non-fatal stage failure. Failing stages never abort a
// scan; their errors ride along in the report.
func (r *Report) AddError(stage string, err error) {
	if err == nil {
		return
	}
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", stage, err))
}

// Summary is a history row for a completed scan.
type Summary struct {
	ID         string
	Domain     string
	StartedAt  time.Time
	FinishedAt time.Time
	WaybackN   int
	LiveN      int
	FuzzN      int
	ReportPath string
}
