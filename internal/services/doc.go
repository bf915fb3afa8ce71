// Package services defines the shared error sentinels and wrapping helpers used
// across textlab components.
//
// Errors are classified by wrapping them with one of the exported sentinels
// (not found, write failure, invalid pattern, validation). Callers test the
// classification with errors.Is and report accordingly; components never retry
// or suppress failures themselves.
package services
