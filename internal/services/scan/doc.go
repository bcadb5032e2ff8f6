// Package scan runs the full recon pipeline for a target: DNS enumeration,
// optional external dig, wayback URL collection, liveness probing of the
// collected URLs, and homepage link extraction.
//
// Stages are best-effort. A failing stage records its error in the report
// and the pipeline moves on; only context cancellation stops a scan early.
package scan
