// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, copy-on-write options, level
//              filtering and strx error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("name = %v, want test-logger", logger.name)
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevelReturnsCopy(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	base := New()
	child := base.WithField("component", "stringx")

	if _, ok := base.contextFields["component"]; ok {
		t.Error("WithField() modified the parent logger")
	}
	if child.contextFields["component"] != "stringx" {
		t.Error("WithField() did not set the field on the copy")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the minimum level were written: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warning was not written: %q", out)
	}
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelOff, Format: FormatText, Output: &buf})
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LevelOff should suppress everything, got %q", buf.String())
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, Name: "strx"}).
		WithField("representation", "heap")

	logger.Info("promoted", Fields{"length": 33})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if data["message"] != "promoted" || data["logger"] != "strx" || data["representation"] != "heap" {
		t.Errorf("unexpected JSON entry: %v", data)
	}
	if data["length"] != float64(33) {
		t.Errorf("length = %v, want 33", data["length"])
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity is a warning", strxerror.New("start 9 >= length 3").WithCode(strxerror.CodeOutOfBounds), "warn"},
		{"allocation failure is an error", strxerror.New("limit").WithCode(strxerror.CodeAllocationFailure), "error"},
		{"foreign error", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Format: FormatJSON, Output: &buf})
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelTrace, Output: &buf})
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write anything")
	}
}

func TestLoggerCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf}).WithCaller(0)
	logger.Info("where")
	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Errorf("caller missing: %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	timer := logger.StartTimer("append loop").WithField("iterations", 10)
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}
	if !strings.Contains(buf.String(), "append loop completed") {
		t.Errorf("timer output missing: %q", buf.String())
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: &buf}))
	Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger not used: %q", buf.String())
	}
}
