package app

import (
	"net/http"
	"time"
)

// DefaultUserAgent identifies ReconX in outbound requests.
const DefaultUserAgent = "ReconX/1.0 (+https://example.com/)"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home        string        // tool directory, e.g. $HOME/.reconx
	Resolver    string        // upstream DNS server "host:53"; empty uses the system default
	Timeout     time.Duration // per HTTP request
	DNSTimeout  time.Duration // per DNS query; defaults to 5s
	ToolTimeout time.Duration // per external tool invocation
	Concurrency int           // probe/fuzz workers
	RatePerSec  float64       // shared outbound request rate; 0 disables
	UserAgent   string
	CDXBase     string       // override for tests
	HTTP        *http.Client // optional; built from Timeout when nil
	Quiet       bool
}

const defaultDNSTimeout = 5 * time.Second

func (c Config) dnsTimeout() time.Duration {
	if c.DNSTimeout > 0 {
		return c.DNSTimeout
	}
	return defaultDNSTimeout
}
