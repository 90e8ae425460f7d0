// File: codes.go
// Title: Error Code Definitions
// Description: Defines the result codes reported by strx operations. Codes are
//              stable strings so they read well in logs and diagnostics records.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Reduced to the string container result taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// CodeOK signals success. It never appears on a returned error.
	CodeOK Code = "OK"

	// CodeUndefined marks a cleared diagnostics record.
	CodeUndefined Code = "UNDEFINED"

	CodeGeneral           Code = "GENERAL_ERROR"
	CodeAllocationFailure Code = "ALLOCATION_FAILURE"
	CodeOutOfBounds       Code = "OUT_OF_BOUNDS"

	// CodeInvalidInput is used for nil or contract-violating arguments.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInvalidLength is used when an operation would break a size
	// invariant, e.g. popping past zero.
	CodeInvalidLength Code = "INVALID_LENGTH"

	// CodeUnreachable is reported by branches that should never execute.
	// It must always be surfaced, never swallowed.
	CodeUnreachable Code = "UNREACHABLE_INTERNAL_STATE"

	// CodeConfigError covers configuration loading and validation.
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeOK, CodeUndefined, CodeGeneral, CodeAllocationFailure, CodeOutOfBounds,
		CodeInvalidInput, CodeInvalidLength, CodeUnreachable, CodeConfigError:
		return true
	default:
		return false
	}
}

// Description returns a short human readable description of the code.
func (c Code) Description() string {
	switch c {
	case CodeOK:
		return "Success"
	case CodeUndefined:
		return "Undefined"
	case CodeGeneral:
		return "General error"
	case CodeAllocationFailure:
		return "Memory allocation failed"
	case CodeOutOfBounds:
		return "Index out of bounds"
	case CodeInvalidInput:
		return "Invalid function input"
	case CodeInvalidLength:
		return "Invalid length"
	case CodeUnreachable:
		return "Unintentional control block reached"
	case CodeConfigError:
		return "Configuration error"
	default:
		return "Unknown error"
	}
}

// IsFailure reports whether the code denotes a failed operation.
func (c Code) IsFailure() bool {
	return c != CodeOK && c != CodeUndefined
}
