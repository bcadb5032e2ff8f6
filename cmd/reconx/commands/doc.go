// Package commands defines the reconx CLI and wires dependencies for subcommands.
//
// Commands
//
//   - dns      Enumerate common DNS record types for a domain
//   - wayback  Collect archived URLs from the Wayback Machine
//   - probe    Check URLs from a file or stdin for liveness
//   - fuzz     Brute-force paths from a wordlist against a base URL
//   - links    Extract anchor hrefs from a site's homepage
//   - scan     Run the full pipeline and write a JSON report
//   - history  List past scans
//
// # Implementation
//
// The root command builds a dependency graph (services, HTTP client, scan
// history store) before any subcommand runs, so handlers share one app
// context with timeouts, rate limiting and connection pooling.
//
// Only scan targets you are authorised to assess.
package commands
