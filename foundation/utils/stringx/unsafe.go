// File: unsafe.go
// Title: Zero-Copy Conversions
// Description: string to []byte conversion without copying, used for read-only
//              access to caller supplied strings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import "unsafe"

// bytesOf returns the bytes backing s. The result must never be written to.
func bytesOf(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// stringOf returns a string sharing b's memory. b must not change while the
// result is in use.
func stringOf(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
