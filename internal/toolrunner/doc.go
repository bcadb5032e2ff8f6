// Package toolrunner executes external helper binaries such as dig,
// nslookup and waybackurls.
//
// Arguments are passed as a vector and never go through a shell. A missing
// binary and a deadline overrun surface as ErrNotFound and ErrTimeout; a
// nonzero exit is not an error, the caller gets the exit code along with
// whatever the tool printed.
package toolrunner
