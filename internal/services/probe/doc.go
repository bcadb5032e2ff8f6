// Package probe checks collected URLs for liveness.
//
// Each URL gets a HEAD request following redirects; servers that reject HEAD
// get a GET fallback. Work runs with bounded concurrency and an optional
// shared rate limiter, and results come back in input order.
package probe
