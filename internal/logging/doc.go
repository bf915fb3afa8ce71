// Package logging constructs the slog loggers used throughout textlab.
//
// Loggers are built explicitly via New and handed to components as a
// dependency; no package configures ambient global logging state. The console
// handler renders single-line "TIME LEVEL component: msg key=value" records,
// the JSON handler emits lowercase levels with RFC3339 timestamps.
package logging
