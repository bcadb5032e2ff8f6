// Package store keeps a local history of completed scans in a single-file
// SQLite database under the tool home directory.
package store
