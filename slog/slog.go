// Package slog provides log/slog decorators for the mdscrape services.
// Each decorator logs one record per call and otherwise delegates unchanged.
package slog
