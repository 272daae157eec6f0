/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for HostK8s components.
//
// # Overview
//
// This package wraps the standard library slog package with HostK8s-specific
// defaults and conventions so every command logs the same way. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("hostk8s", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("processing contract", "stack", "sample")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("hostk8s", "v1.0.0", "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug hostk8s storage setup sample
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "storage setup completed",
//	    "module": "hostk8s",
//	    "version": "v1.0.0",
//	    "stack": "sample"
//	}
//
// Debug level additionally includes the source location of each record.
package logging
