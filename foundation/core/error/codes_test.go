// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, descriptions and severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeOK, true},
		{CodeUndefined, true},
		{CodeGeneral, true},
		{CodeAllocationFailure, true},
		{CodeOutOfBounds, true},
		{CodeInvalidInput, true},
		{CodeInvalidLength, true},
		{CodeUnreachable, true},
		{CodeConfigError, true},
		{Code("NOPE"), false},
		{Code(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestCodeDescription(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeOK, "Success"},
		{CodeAllocationFailure, "Memory allocation failed"},
		{CodeOutOfBounds, "Index out of bounds"},
		{CodeInvalidInput, "Invalid function input"},
		{CodeInvalidLength, "Invalid length"},
		{CodeUnreachable, "Unintentional control block reached"},
		{Code("SOMETHING_ELSE"), "Unknown error"},
	}

	for _, tt := range tests {
		if got := tt.code.Description(); got != tt.want {
			t.Errorf("Description(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeIsFailure(t *testing.T) {
	if CodeOK.IsFailure() {
		t.Error("CodeOK should not be a failure")
	}
	if CodeUndefined.IsFailure() {
		t.Error("CodeUndefined should not be a failure")
	}
	if !CodeInvalidLength.IsFailure() {
		t.Error("CodeInvalidLength should be a failure")
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeUnreachable, SeverityCritical},
		{CodeAllocationFailure, SeverityHigh},
		{CodeOutOfBounds, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodeInvalidLength, SeverityLow},
		{CodeGeneral, SeverityMedium},
		{CodeConfigError, SeverityMedium},
	}

	for _, tt := range tests {
		if got := GetSeverityFromCode(tt.code); got != tt.want {
			t.Errorf("GetSeverityFromCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}

	if !SeverityCritical.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("ShouldAlert() should only be true for high and critical")
	}
}
