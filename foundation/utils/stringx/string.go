// File: string.go
// Title: Small-String-Optimised Container
// Description: The String type, its constructors, read accessors and release.
//              Contents up to InlineCapacity bytes are stored in the struct;
//              longer contents move to a heap buffer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial string utilities
// - 2025-03-02 v0.2.0: Inline/heap container replaces the helper functions

package stringx

import (
	"fmt"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

// InlineCapacity is the number of content bytes a String stores without a
// heap allocation. The inline buffer holds one more byte for the terminator.
const InlineCapacity = 15

// Representation is the storage variant of a String.
type Representation uint8

const (
	Inline Representation = iota
	Heap
)

// String returns "inline" or "heap".
func (r Representation) String() string {
	switch r {
	case Inline:
		return "inline"
	case Heap:
		return "heap"
	default:
		return "unknown"
	}
}

// Flag is a bit in the value returned by (*String).Flags.
type Flag uint8

const (
	// FlagHeap is set while the content lives in a heap buffer.
	FlagHeap Flag = 1 << iota

	// FlagSticky is set while the String may not move back inline.
	FlagSticky
)

// Has reports whether all bits of x are set in f.
func (f Flag) Has(x Flag) bool {
	return f&x == x
}

// String is a mutable byte string. The zero value is an empty inline string
// using the default settings.
//
// Invariants:
//   - heap == nil while inline; then length <= InlineCapacity and capacity == 0
//   - heap != nil while on the heap; then len(heap) == capacity > length
//   - the byte after the content is always 0
type String struct {
	length   uint32
	capacity uint32
	sticky   bool

	inline [InlineCapacity + 1]byte
	heap   []byte

	// gen changes whenever the active buffer changes.
	gen uint64
	cfg *settings
}

// New creates a String holding a copy of s.
func New(s string, opts ...Option) (*String, error) {
	return construct("stringx.New", bytesOf(s), newSettings(opts))
}

// MustNew is like New but panics on error.
func MustNew(s string, opts ...Option) *String {
	str, err := New(s, opts...)
	if err != nil {
		panic(err)
	}
	return str
}

// FromBytes creates a String holding a copy of b. A nil b is invalid input;
// an empty non-nil b gives an empty String.
func FromBytes(b []byte, opts ...Option) (*String, error) {
	cfg := newSettings(opts)
	if b == nil {
		return nil, reportf(cfg, strxerror.CodeInvalidInput, "stringx.FromBytes", "input buffer is nil")
	}
	return construct("stringx.FromBytes", b, cfg)
}

func construct(op string, src []byte, cfg *settings) (*String, error) {
	s := &String{cfg: cfg}
	if err := s.set(op, src); err != nil {
		return nil, err
	}
	if cfg.stickyPolicy() == StickyOnConstruct {
		s.sticky = true
	}
	return s, nil
}

// Release drops the heap buffer and resets s to an empty inline string. Views
// taken from s become invalid.
func (s *String) Release() error {
	if s == nil {
		return reportf(nil, strxerror.CodeInvalidInput, "stringx.String.Release", "string is nil")
	}
	s.heap = nil
	s.length = 0
	s.capacity = 0
	s.sticky = false
	s.inline[0] = 0
	s.gen++
	return nil
}

// buf returns the whole active buffer, terminator slot included.
func (s *String) buf() []byte {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:]
}

// Bytes returns the content. The slice aliases the active buffer and is
// valid until the next mutation.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	n := s.length
	return s.buf()[:n:n]
}

// CString returns the content followed by its zero terminator.
func (s *String) CString() []byte {
	if s == nil {
		return []byte{0}
	}
	n := s.length + 1
	return s.buf()[:n:n]
}

// String returns a copy of the content.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	return string(s.Bytes())
}

// Format implements fmt.Formatter so %q and %x see the content.
func (s *String) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if f.Flag('+') && verb == 'v' {
			fmt.Fprintf(f, "%s{len=%d cap=%d sticky=%t}", s.Representation(), s.Len(), s.Capacity(), s.IsSticky())
			return
		}
		_, _ = f.Write(s.Bytes())
	case 'q':
		fmt.Fprintf(f, "%q", s.Bytes())
	case 'x':
		fmt.Fprintf(f, "%x", s.Bytes())
	case 'X':
		fmt.Fprintf(f, "%X", s.Bytes())
	default:
		fmt.Fprintf(f, "%%!%c(stringx.String=%s)", verb, s.Bytes())
	}
}

// Len returns the content length in bytes.
func (s *String) Len() uint32 {
	if s == nil {
		return 0
	}
	return s.length
}

// Capacity returns the heap capacity including the terminator, or 0 while
// inline.
func (s *String) Capacity() uint32 {
	if s == nil {
		return 0
	}
	return s.capacity
}

// EffectiveCapacity returns the size of the active buffer: InlineCapacity+1
// while inline, Capacity otherwise.
func (s *String) EffectiveCapacity() uint32 {
	if s == nil || s.heap == nil {
		return InlineCapacity + 1
	}
	return s.capacity
}

// Representation reports where the content is stored.
func (s *String) Representation() Representation {
	if s != nil && s.heap != nil {
		return Heap
	}
	return Inline
}

// IsHeap reports whether the content is in a heap buffer.
func (s *String) IsHeap() bool { return s.Representation() == Heap }

// IsInline reports whether the content is stored in the struct.
func (s *String) IsInline() bool { return s.Representation() == Inline }

// IsSticky reports whether s is pinned to the heap.
func (s *String) IsSticky() bool { return s != nil && s.sticky }

// IsEmpty reports whether s has no content.
func (s *String) IsEmpty() bool { return s.Len() == 0 }

// Flags returns the heap and sticky bits.
func (s *String) Flags() Flag {
	var f Flag
	if s.IsHeap() {
		f |= FlagHeap
	}
	if s.IsSticky() {
		f |= FlagSticky
	}
	return f
}

// MakeSticky pins s to the heap: later shrinking never moves it back inline.
// An inline String stays inline until it is promoted.
func (s *String) MakeSticky() {
	if s != nil {
		s.sticky = true
	}
}

// Generation returns a counter that changes whenever the active buffer of s
// is replaced.
func (s *String) Generation() uint64 {
	if s == nil {
		return 0
	}
	return s.gen
}

func (s *String) settings() *settings {
	if s == nil {
		return nil
	}
	return s.cfg
}

// fail builds an error located at the caller of fail, reports it to the
// channel of s and returns it.
func (s *String) fail(code strxerror.Code, op, format string, args ...interface{}) error {
	return reportAt(s.settings(), 1, code, op, format, args...)
}

// reportf is fail for functions without a receiver.
func reportf(cfg *settings, code strxerror.Code, op, format string, args ...interface{}) error {
	return reportAt(cfg, 1, code, op, format, args...)
}

// reportAt locates the error skip frames above its caller.
func reportAt(cfg *settings, skip int, code strxerror.Code, op, format string, args ...interface{}) error {
	err := strxerror.Newf(format, args...).
		WithCode(code).
		WithOperation(op).
		AtCaller(skip + 1)
	return cfg.ch().Report(err)
}
