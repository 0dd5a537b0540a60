// Package validation provides input validation helpers: a fluent Validator
// for collecting per-field checks and a struct-tag based Struct validator.
package validation
