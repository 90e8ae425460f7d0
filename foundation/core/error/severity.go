// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels derived from error codes. The diagnostics
//              channel uses them to pick the log level of a reported failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-03-02 v0.2.0: Severity mapping for container result codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake that left no state behind,
	// e.g. an out-of-range index.
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure without a more specific class.
	SeverityMedium

	// SeverityHigh indicates resource exhaustion.
	SeverityHigh

	// SeverityCritical indicates a broken internal invariant.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeUnreachable:
		return SeverityCritical
	case CodeAllocationFailure:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidLength, CodeOutOfBounds:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
