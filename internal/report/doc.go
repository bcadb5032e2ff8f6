// Package report persists scan reports as pretty-printed JSON.
//
// Writes go through a temp file and rename so an interrupted run never
// leaves a truncated report behind.
package report
