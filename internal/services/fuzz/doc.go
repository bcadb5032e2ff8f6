// Package fuzz brute-forces paths from a wordlist against a base URL.
//
// Every word becomes a GET request; responses whose status is not in the
// filtered set (404 by default) are reported as hits with status and body
// size. Requests run with bounded concurrency and optional rate limiting.
package fuzz
