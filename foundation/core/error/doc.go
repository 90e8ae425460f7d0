// Package error provides the structured error type used across strx.
//
// Package: error
// Title: strx Error Handling
// Description: Every fallible operation in strx returns a *Error carrying a
//              result code, the failing operation, the source location that
//              detected the failure and optional details. The same value is
//              handed to the diagnostics channel, so the record a callback sees
//              and the error the caller receives never disagree.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Container result taxonomy and source locations
//
// Usage:
//
//	import strxerror "github.com/msto63/strx/foundation/core/error"
//
//	err := strxerror.New("start index 20 >= length 5").
//		WithCode(strxerror.CodeOutOfBounds).
//		WithOperation("stringx.View.Sub").
//		WithDetail("start", 20)
//
//	if strxerror.HasCode(err, strxerror.CodeOutOfBounds) {
//		// ...
//	}
//
// Codes map to the result taxonomy OK, GENERAL_ERROR, ALLOCATION_FAILURE,
// OUT_OF_BOUNDS, INVALID_INPUT, INVALID_LENGTH and UNREACHABLE_INTERNAL_STATE.
// Severities are derived from codes when WithCode is used.
package error
