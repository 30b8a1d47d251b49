// Package logging constructs slog loggers for operational logging.
//
// This covers platform debugging (what the tracker itself is doing), which is
// distinct from the recorded call history that pkg/tracker stores for
// assertions. The tracker defaults to Nop so instrumented tests stay silent
// unless a logger is supplied.
package logging
