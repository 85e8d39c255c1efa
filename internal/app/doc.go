// Package app contains the application lifecycle: it validates the assembled
// configuration, builds the logger, loads sheet files into a sheet and then
// evaluates, renders, edits, exports or publishes it. It is decoupled from
// the command line, which lives in package cli.
package app
