// Package logging constructs the application's slog loggers.
//
// Two output formats are supported: a colorized human-readable console
// format (the default, color gated on the output being a terminal) and a
// machine-readable JSON format. Attr helpers mirror the slog constructors so
// call sites stay terse, and NewNop/NewComponentLogger support tests and
// per-component annotation.
package logging
