// File: view.go
// Title: Non-Owning String View
// Description: View is a read-only window into a byte sequence owned by a
//              String, a Go string or a caller buffer. Views never allocate
//              except in ToString, String and SplitAll.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"fortio.org/safecast"

	"github.com/msto63/strx/foundation/core/diag"
	strxerror "github.com/msto63/strx/foundation/core/error"
)

// View is a borrowed byte range. The zero value is an empty view.
type View struct {
	data []byte

	// owner and gen are set for views into a String.
	owner *String
	gen   uint64
}

// ViewString returns a view of s. s must be shorter than MaxCapacity.
func ViewString(s string) View {
	if uint64(len(s)) >= uint64(MaxCapacity) {
		_ = reportf(nil, strxerror.CodeInvalidLength, "stringx.ViewString", "length %d exceeds the maximum capacity", len(s))
		return View{}
	}
	b := bytesOf(s)
	return View{data: b[:len(b):len(b)]}
}

// ViewCString returns a view of b up to its first zero byte. A buffer
// without a terminator is invalid input.
func ViewCString(b []byte) (View, error) {
	const op = "stringx.ViewCString"
	if b == nil {
		return View{}, reportf(nil, strxerror.CodeInvalidInput, op, "input buffer is nil")
	}
	n := bytes.IndexByte(b, 0)
	if n < 0 {
		return View{}, reportf(nil, strxerror.CodeInvalidInput, op, "buffer has no terminator")
	}
	return View{data: b[:n:n]}, nil
}

// ViewBuffer returns a view of the first n bytes of b.
func ViewBuffer(b []byte, n uint32) (View, error) {
	const op = "stringx.ViewBuffer"
	if b == nil {
		return View{}, reportf(nil, strxerror.CodeInvalidInput, op, "input buffer is nil")
	}
	if uint64(n) > uint64(len(b)) {
		return View{}, reportf(nil, strxerror.CodeOutOfBounds, op, "length %d exceeds buffer size %d", n, len(b))
	}
	return View{data: b[:n:n]}, nil
}

// ViewOf returns a view of the whole content of s.
func ViewOf(s *String) (View, error) {
	if s == nil {
		return View{}, nilString("stringx.ViewOf")
	}
	return s.View(), nil
}

// View returns a view of the whole content of s. It is invalidated by any
// reallocation, demotion or Release of s.
func (s *String) View() View {
	if s == nil {
		return View{}
	}
	return View{data: s.Bytes(), owner: s, gen: s.gen}
}

// Sub returns a view of length bytes of s starting at start. See View.Sub.
func (s *String) Sub(start, length uint32) (View, error) {
	if s == nil {
		return View{}, nilString("stringx.String.Sub")
	}
	return s.View().sub("stringx.String.Sub", start, length)
}

// SubToEnd returns a view of s from start to the end.
func (s *String) SubToEnd(start uint32) (View, error) {
	if s == nil {
		return View{}, nilString("stringx.String.SubToEnd")
	}
	return s.View().sub("stringx.String.SubToEnd", start, MaxCapacity)
}

func (v View) channel() *diag.Channel {
	if v.owner == nil {
		return diag.Default()
	}
	return v.owner.cfg.ch()
}

func (v View) fail(code strxerror.Code, op, format string, args ...interface{}) error {
	err := strxerror.Newf(format, args...).
		WithCode(code).
		WithOperation(op).
		AtCaller(1)
	return v.channel().Report(err)
}

// derive returns a view of b with the provenance of v.
func (v View) derive(b []byte) View {
	return View{data: b[:len(b):len(b)], owner: v.owner, gen: v.gen}
}

// Sub returns the view of length bytes starting at start. length is clamped
// to the bytes available. A start at or past the end is out of bounds and
// yields an empty view.
func (v View) Sub(start, length uint32) (View, error) {
	return v.sub("stringx.View.Sub", start, length)
}

// SubToEnd returns the view from start to the end.
func (v View) SubToEnd(start uint32) (View, error) {
	return v.sub("stringx.View.SubToEnd", start, MaxCapacity)
}

// Slice returns the view of [start, end). end is clamped to the length;
// end before start is out of bounds.
func (v View) Slice(start, end uint32) (View, error) {
	const op = "stringx.View.Slice"
	if end < start {
		return View{}, v.fail(strxerror.CodeOutOfBounds, op, "end %d before start %d", end, start)
	}
	return v.sub(op, start, end-start)
}

func (v View) sub(op string, start, length uint32) (View, error) {
	n := v.Len()
	if start >= n {
		return View{}, v.fail(strxerror.CodeOutOfBounds, op, "start %d out of bounds for length %d", start, n)
	}
	if length > n-start {
		length = n - start
	}
	return v.derive(v.data[start : start+length]), nil
}

// Len returns the number of bytes in v.
func (v View) Len() uint32 {
	// constructors reject anything longer
	return uint32(len(v.data))
}

// IsEmpty reports whether v has no bytes.
func (v View) IsEmpty() bool { return len(v.data) == 0 }

// Bytes returns the viewed bytes without copying. They must not be written.
func (v View) Bytes() []byte { return v.data }

// String returns a copy of the viewed bytes.
func (v View) String() string { return string(v.data) }

// Valid reports whether the String v was taken from still uses the buffer v
// points into. Views not taken from a String are always valid.
func (v View) Valid() bool {
	return v.owner == nil || v.owner.gen == v.gen
}

// Equal reports whether v and other hold the same bytes.
func (v View) Equal(other View) bool {
	return bytes.Equal(v.data, other.data)
}

// EqualString reports whether v holds exactly the bytes of s.
func (v View) EqualString(s string) bool {
	return stringOf(v.data) == s
}

// HasPrefix reports whether v begins with prefix.
func (v View) HasPrefix(prefix View) bool {
	return bytes.HasPrefix(v.data, prefix.data)
}

// HasSuffix reports whether v ends with suffix.
func (v View) HasSuffix(suffix View) bool {
	return bytes.HasSuffix(v.data, suffix.data)
}

// IndexByte returns the index of the first c in v, or -1.
func (v View) IndexByte(c byte) int32 {
	return v.index("stringx.View.IndexByte", bytes.IndexByte(v.data, c))
}

// Index returns the index of the first occurrence of needle, or -1. An
// empty needle is found at 0.
func (v View) Index(needle View) int32 {
	return v.index("stringx.View.Index", bytes.Index(v.data, needle.data))
}

// IndexString is Index for a Go string needle.
func (v View) IndexString(needle string) int32 {
	return v.index("stringx.View.IndexString", bytes.Index(v.data, bytesOf(needle)))
}

func (v View) index(op string, i int) int32 {
	if i < 0 {
		return -1
	}
	idx, err := safecast.Conv[int32](i)
	if err != nil {
		_ = v.fail(strxerror.CodeOutOfBounds, op, "index %d does not fit the result type", i)
		return -1
	}
	return idx
}

// ToString copies the viewed bytes into a new String.
func (v View) ToString(opts ...Option) (*String, error) {
	cfg := newSettings(opts)
	if cfg == nil && v.owner != nil {
		cfg = v.owner.cfg
	}
	return construct("stringx.View.ToString", v.data, cfg)
}

// TrimWhitespace returns v without leading and trailing whitespace.
func (v View) TrimWhitespace() View {
	start, end := 0, len(v.data)
	for start < end && isSpace(v.data[start]) {
		start++
	}
	for end > start && isSpace(v.data[end-1]) {
		end--
	}
	return v.derive(v.data[start:end])
}

// SplitAll returns the fields of v separated by sep. Adjacent separators
// produce empty fields and an empty view yields one empty field.
func (v View) SplitAll(sep byte) []View {
	fields := make([]View, 0, bytes.Count(v.data, []byte{sep})+1)
	rest := v.data
	for {
		i := bytes.IndexByte(rest, sep)
		if i < 0 {
			break
		}
		fields = append(fields, v.derive(rest[:i]))
		rest = rest[i+1:]
	}
	return append(fields, v.derive(rest))
}

// ParseInt parses v, surrounding whitespace ignored, as a base-10 int32.
func (v View) ParseInt() (int32, bool) {
	t := v.TrimWhitespace()
	n, err := strconv.ParseInt(stringOf(t.data), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParseFloat parses v, surrounding whitespace ignored, as a finite float64.
func (v View) ParseFloat() (float64, bool) {
	t := v.TrimWhitespace()
	f, err := strconv.ParseFloat(stringOf(t.data), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Print writes "label: bytes" and a newline to w, or only the bytes when
// label is empty.
func (v View) Print(w io.Writer, label string) error {
	var err error
	if label == "" {
		_, err = fmt.Fprintf(w, "%s\n", v.data)
	} else {
		_, err = fmt.Fprintf(w, "%s: %s\n", label, v.data)
	}
	return err
}
