// File: diag.go
// Title: Diagnostics Channel
// Description: Last-error record plus a synchronously invoked callback. Every
//              failing strx operation reports here in addition to returning
//              its error, so tracing can observe failures without changing
//              control flow.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/core/log"
)

// ErrorInfo is the record of the most recent failure on a channel.
type ErrorInfo struct {
	Code      strxerror.Code
	Operation string
	File      string
	Line      int
	Message   string

	// Err is the error value the failing operation returned.
	Err error
}

// String formats the record the way the default callback prints it.
func (i ErrorInfo) String() string {
	return fmt.Sprintf("Error in %s:%d (%s): %s - %s",
		i.File, i.Line, i.Operation, i.Code.Description(), i.Message)
}

// Callback is invoked synchronously each time a failure is reported.
type Callback func(info ErrorInfo)

// Channel collects failure reports. The zero value is not usable; use New.
type Channel struct {
	mu       sync.Mutex
	last     ErrorInfo
	callback Callback
	enabled  bool
}

// Option configures a Channel.
type Option func(*Channel)

// WithCallback sets the initial callback.
func WithCallback(cb Callback) Option {
	return func(c *Channel) {
		if cb != nil {
			c.callback = cb
		}
	}
}

// WithLogger makes the default callback write through logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Channel) {
		c.callback = LogCallback(logger)
	}
}

// Disabled creates the channel with recording switched off.
func Disabled() Option {
	return func(c *Channel) {
		c.enabled = false
	}
}

// New creates a channel that logs failures to stderr as text.
func New(opts ...Option) *Channel {
	c := &Channel{
		last:     ErrorInfo{Code: strxerror.CodeUndefined},
		callback: LogCallback(defaultLogger(os.Stderr)),
		enabled:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultLogger(w io.Writer) *log.Logger {
	return log.NewWithConfig(log.Config{
		Level:  log.LevelTrace,
		Format: log.FormatText,
		Output: w,
		Name:   "strx",
	})
}

// LogCallback returns a callback that writes the formatted record through
// logger. Low severity failures are logged as warnings.
func LogCallback(logger *log.Logger) Callback {
	return func(info ErrorInfo) {
		fields := log.Fields{"code": info.Code.String()}
		if info.Err != nil {
			var strxErr *strxerror.Error
			if errors.As(info.Err, &strxErr) {
				for k, v := range strxErr.Details() {
					fields[k] = v
				}
			}
		}
		if strxerror.GetSeverityFromCode(info.Code) == strxerror.SeverityLow {
			logger.Warn(info.String(), fields)
			return
		}
		logger.Error(info.String(), fields)
	}
}

// Discard is a callback that ignores every report.
func Discard(ErrorInfo) {}

// SetCallback replaces the callback. A nil callback is ignored.
func (c *Channel) SetCallback(cb Callback) {
	if cb == nil {
		return
	}
	c.mu.Lock()
	c.callback = cb
	c.mu.Unlock()
}

// Enable switches recording and callbacks on or off.
func (c *Channel) Enable(enabled bool) {
	c.mu.Lock()
	c.enabled = enabled
	c.mu.Unlock()
}

// Enabled reports whether the channel records failures.
func (c *Channel) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Last returns a copy of the most recent record.
func (c *Channel) Last() ErrorInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Clear resets the record to CodeUndefined.
func (c *Channel) Clear() {
	c.mu.Lock()
	c.last = ErrorInfo{Code: strxerror.CodeUndefined}
	c.mu.Unlock()
}

// Report records err and invokes the callback. err is returned unchanged so
// call sites can write `return ch.Report(err)`. A nil err is a no-op.
func (c *Channel) Report(err error) error {
	if err == nil {
		return nil
	}

	info := ErrorInfo{Code: strxerror.CodeGeneral, Message: err.Error(), Err: err}
	var strxErr *strxerror.Error
	if errors.As(err, &strxErr) {
		info.Code = strxErr.Code()
		info.Operation = strxErr.Operation()
		info.File = strxErr.File()
		info.Line = strxErr.Line()
		info.Message = strxErr.Message()
	}

	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return err
	}
	c.last = info
	cb := c.callback
	c.mu.Unlock()

	// The callback runs outside the lock so it may call Last or Clear.
	if cb != nil {
		cb(info)
	}
	return err
}

// Reportf builds a *strxerror.Error located at the caller and reports it.
func (c *Channel) Reportf(code strxerror.Code, op, format string, args ...interface{}) *strxerror.Error {
	err := strxerror.Newf(format, args...).WithCode(code).WithOperation(op).AtCaller(1)
	c.Report(err)
	return err
}

var (
	defaultChannel   = New()
	defaultChannelMu sync.RWMutex
)

// Default returns the process-wide channel used when no channel is given.
func Default() *Channel {
	defaultChannelMu.RLock()
	defer defaultChannelMu.RUnlock()
	return defaultChannel
}

// SetDefault replaces the process-wide channel. It returns the previous one.
func SetDefault(c *Channel) *Channel {
	defaultChannelMu.Lock()
	defer defaultChannelMu.Unlock()
	prev := defaultChannel
	if c != nil {
		defaultChannel = c
	}
	return prev
}
