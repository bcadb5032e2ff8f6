// Package app wires application dependencies for the CLI.
//
// It builds the concrete services, clients and stores from Config, exposing
// them via the Wire struct for commands to use.
package app
