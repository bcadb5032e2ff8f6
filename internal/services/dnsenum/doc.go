// Package dnsenum queries the common DNS record types for a target domain.
//
// A lookup that returns no answers (NXDOMAIN, empty answer section, refused)
// produces an empty record list so that enumeration of the remaining types
// continues; only a total resolver failure surfaces as an error.
package dnsenum
