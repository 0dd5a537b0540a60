// Package config loads application configuration from YAML files, .env
// files and environment variables, in that order of precedence, and
// unmarshals the merged result into a caller-provided struct.
package config
