// Package logger provides structured logging for morelib using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.Get("randx")
//	log.Debug("aged weights", logger.Fields("coef", 2.0))
package logger
