// Package util provides generic multipurpose helpers for slices, maps and
// strings.
//
// It includes slice operations, pointer helpers, safe map merging, stable
// multi-key sorting with tie-group preservation, string splitting utilities,
// sanitization, and common validation helpers.
package util
