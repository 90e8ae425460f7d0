// File: format_test.go
// Title: Formatter Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "pop on empty string")
	e.Timestamp = time.Date(2025, 3, 2, 10, 4, 5, 0, time.UTC)
	e.Logger = "diag"
	e.Fields = Fields{"op": "PopLast", "code": "INVALID_LENGTH"}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" TEXT ", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTextFormatterStableFieldOrder(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatal(err)
	}
	want := "10:04:05 [WRN] {diag} pop on empty string [code=INVALID_LENGTH op=PopLast]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatterWithoutColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	out, _ := f.Format(testEntry())
	if !strings.Contains(string(out), "[WRN]") {
		t.Errorf("Format() = %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("length is zero")
	out, _ := NewLogfmtFormatter().Format(e)

	for _, want := range []string{
		"level=warn",
		`message="pop on empty string"`,
		`code="INVALID_LENGTH"`,
		`error="length is zero"`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Format() = %q, missing %q", out, want)
		}
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("FormatText should give a *TextFormatter")
	}
	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("FormatConsole should give a *ConsoleFormatter")
	}
	if _, ok := GetFormatter(Format(42)).(*JSONFormatter); !ok {
		t.Error("unknown formats should fall back to JSON")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DBG", LevelDebug, false},
		{"warning", LevelWarn, false},
		{"off", LevelOff, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.input, got, err)
		}
	}
}
