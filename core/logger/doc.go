// Package logger provides slog construction helpers and typed attribute
// constructors used across the framework.
//
// Attribute helpers follow the empty-Attr pattern for nil safety, so call
// sites never need explicit nil checks:
//
//	log.Error("dispatch failed", logger.Error(err), logger.Path(req.Path))
package logger
