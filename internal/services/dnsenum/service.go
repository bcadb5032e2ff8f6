package dnsenum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"

	"reconx/internal/domain"
)

const defaultTimeout = 5 * time.Second

// resolvConf is consulted when no resolver address is configured.
var resolvConf = "/etc/resolv.conf"

// Service resolves records against a single upstream resolver.
type Service struct {
	server string
	udp    *dns.Client
	tcp    *dns.Client
}

// New returns a resolver talking to server ("host:53"). An empty server
// falls back to the first nameserver in resolv.conf, then to 8.8.8.8.
func New(server string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if server == "" {
		server = systemResolver()
	}
	return &Service{
		server: server,
		udp:    &dns.Client{Net: "udp", Timeout: timeout},
		tcp:    &dns.Client{Net: "tcp", Timeout: timeout},
	}
}

// Server returns the upstream resolver address in use.
func (s *Service) Server() string { return s.server }

// Enumerate queries every type in domain.RecordTypes. A type with no
// answers is present in the result with an empty slice.
func (s *Service) Enumerate(ctx context.Context, target domain.Target) (domain.RecordSet, error) {
	out := domain.RecordSet{}
	var lastErr error
	failures := 0
	for _, rtype := range domain.RecordTypes {
		values, err := s.Lookup(ctx, target, rtype)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			failures++
			values = nil
		}
		if values == nil {
			values = []string{}
		}
		out[rtype] = values
	}
	if failures == len(domain.RecordTypes) {
		return nil, fmt.Errorf("enumerate %s: all lookups failed: %w", target, lastErr)
	}
	return out, nil
}

// Lookup queries a single record type and renders the answers as trimmed
// presentation strings without the owner/TTL/class prefix.
func (s *Service) Lookup(ctx context.Context, target domain.Target, rtype string) ([]string, error) {
	qtype, ok := dns.StringToType[strings.ToUpper(rtype)]
	if !ok {
		return nil, fmt.Errorf("unknown record type %q", rtype)
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(target.String()), qtype)
	m.RecursionDesired = true

	resp, _, err := s.udp.ExchangeContext(ctx, m, s.server)
	if err != nil {
		return nil, fmt.Errorf("query %s %s: %w", rtype, target, err)
	}
	if resp.Truncated {
		resp, _, err = s.tcp.ExchangeContext(ctx, m, s.server)
		if err != nil {
			return nil, fmt.Errorf("query %s %s over tcp: %w", rtype, target, err)
		}
	}

	var values []string
	for _, rr := range resp.Answer {
		if rr.Header().Rrtype != qtype {
			continue
		}
		values = append(values, renderRR(rr))
	}
	return values, nil
}

// renderRR strips the "owner TTL class type" prefix from the presentation
// form, leaving only the record data.
func renderRR(rr dns.RR) string {
	s := rr.String()
	if h := rr.Header().String(); strings.HasPrefix(s, h) {
		s = s[len(h):]
	}
	return strings.TrimSpace(s)
}

func systemResolver() string {
	if conf, err := dns.ClientConfigFromFile(resolvConf); err == nil && len(conf.Servers) > 0 {
		return conf.Servers[0] + ":" + conf.Port
	}
	return "8.8.8.8:53"
}

var _ domain.Resolver = (*Service)(nil)
