// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides strongly typed slog attrs for common stratum fields.
package slogfield

import "log/slog"

// Path
func Path(s string) slog.Attr {
	return slog.String("path", s)
}

// Error
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
