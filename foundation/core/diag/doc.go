// Package diag implements the strx diagnostics channel.
//
// A Channel keeps the record of the most recent failure (code, operation,
// source location, message) and synchronously invokes a replaceable callback
// when a failure is reported. The channel is purely observational: operations
// always return their error to the caller as well, and nothing in strx reads
// the record to decide what to do next.
//
// Strings report to the channel they were created with, or to Default() when
// none was given. Tests and callers that want isolation create their own
// channel with New and pass it via stringx.WithChannel.
package diag
