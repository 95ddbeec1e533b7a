// Package logging provides a simple leveled logging interface for beatsite.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// Output is written through a charmbracelet/log logger with timestamps.
// The log level is configured via the DEBUG or LOG_LEVEL environment variables.
package logging
