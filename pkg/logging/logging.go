// Package logging provides the solver's diagnostic injection seam:
// diagnostic output is injectable behind a sink interface so the solver
// has no compile-time dependency on any particular I/O facility.
//
// A build-tag fork between a real sink and a no-op one is the wrong shape
// for a library whose caller picks the sink per solve rather than per
// binary, so this package instead exposes one runtime default (Nop,
// zerolog's documented no-op logger) that callers override by setting
// Config.Logger (see pkg/pdipm) to a zerolog.Logger of their own -- e.g.
// a `zerolog.New(os.Stderr).With().Caller().Logger()` construction.
package logging

import "github.com/rs/zerolog"

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
