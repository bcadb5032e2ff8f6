// Package wayback collects historical URLs for a domain from the Internet
// Archive CDX API, or from the output of a local waybackurls binary.
//
// CDX queries are rate limited client-side and retried with backoff on
// transient failures. Results are deduplicated preserving first-seen order
// and capped at the caller's limit.
package wayback
