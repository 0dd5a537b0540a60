// Package textio provides convenience helpers for iterating over the lines
// of files and streams.
//
// Lines are trimmed of surrounding whitespace as they are read, an arbitrary
// separator may replace the newline, and empty lines can either be yielded
// as "" or skipped entirely.
package textio
