// Package errors provides unified error handling for morelib packages.
// It implements structured error types with machine-readable codes and
// chainable context, so callers can branch on what failed without parsing
// message strings.
package errors
