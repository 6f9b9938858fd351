// Package logger wraps zap with a sugared console logger written to stderr
// and helpers that carry the logger in a context.Context.
//
// Standard output is reserved for the reported version line, so nothing in
// this package ever writes there.
package logger
