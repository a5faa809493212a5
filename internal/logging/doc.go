// Package logging constructs the slog loggers used across rosterlink.
//
// Two output formats are supported: a human-oriented console format
// (timestamp, level, component, message, key=value attrs) and line-delimited
// JSON. Log output can be mirrored to a file under the configured log
// directory in addition to stdout.
//
// Components obtain scoped loggers via logger.With(logging.String("component", ...))
// so console lines stay attributable when several stages interleave.
package logging
