// File: mutate.go
// Title: String Mutation
// Description: Append, pop, reserve, clear, set and copy operations. Every
//              operation either succeeds completely or leaves the String as
//              it was.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import (
	"bytes"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

func nilString(op string) error {
	return reportAt(nil, 1, strxerror.CodeInvalidInput, op, "string is nil")
}

// Append adds b to the end of s. b may alias the content of s.
func (s *String) Append(b []byte) error {
	const op = "stringx.String.Append"
	if s == nil {
		return nilString(op)
	}
	if b == nil {
		return s.fail(strxerror.CodeInvalidInput, op, "input buffer is nil")
	}
	return s.append(op, b)
}

// AppendString adds str to the end of s.
func (s *String) AppendString(str string) error {
	const op = "stringx.String.AppendString"
	if s == nil {
		return nilString(op)
	}
	return s.append(op, bytesOf(str))
}

// AppendByte adds c to the end of s.
func (s *String) AppendByte(c byte) error {
	const op = "stringx.String.AppendByte"
	if s == nil {
		return nilString(op)
	}
	required, err := s.required(op, 1)
	if err != nil {
		return err
	}
	if err := s.ensureCapacity(op, required); err != nil {
		return err
	}
	buf := s.buf()
	buf[s.length] = c
	s.length++
	buf[s.length] = 0
	return nil
}

// AppendOther adds the content of other to s. other may be s itself and is
// never modified.
func (s *String) AppendOther(other *String) error {
	const op = "stringx.String.AppendOther"
	if s == nil || other == nil {
		return nilString(op)
	}
	return s.append(op, other.Bytes())
}

func (s *String) append(op string, src []byte) error {
	n, err := s.checkedLen(op, len(src))
	if err != nil {
		return err
	}
	required, err := s.required(op, n)
	if err != nil {
		return err
	}
	// src stays readable across a resize: the old buffer is only dropped.
	if err := s.ensureCapacity(op, required); err != nil {
		return err
	}
	buf := s.buf()
	copy(buf[s.length:], src)
	s.length += n
	buf[s.length] = 0
	return nil
}

// PopLast removes and returns the last byte.
func (s *String) PopLast() (byte, error) {
	const op = "stringx.String.PopLast"
	if s == nil {
		return 0, nilString(op)
	}
	if s.length == 0 {
		return 0, s.fail(strxerror.CodeInvalidLength, op, "pop on empty string")
	}
	buf := s.buf()
	c := buf[s.length-1]
	s.length--
	buf[s.length] = 0
	s.maybeDemote()
	return c, nil
}

// PopLastN removes the last n bytes. n larger than the length fails without
// removing anything.
func (s *String) PopLastN(n uint32) error {
	const op = "stringx.String.PopLastN"
	if s == nil {
		return nilString(op)
	}
	if n > s.length {
		return s.fail(strxerror.CodeInvalidLength, op, "cannot pop %d bytes from a string of length %d", n, s.length)
	}
	if n == 0 {
		return nil
	}
	s.length -= n
	s.buf()[s.length] = 0
	s.maybeDemote()
	return nil
}

// Reserve makes room for extra more bytes with a single allocation. An
// inline string is always promoted, even when extra is 0. Under the
// StickyOnReserve policy the string becomes sticky.
func (s *String) Reserve(extra uint32) error {
	const op = "stringx.String.Reserve"
	if s == nil {
		return nilString(op)
	}

	if s.heap == nil {
		required, err := s.required(op, extra)
		if err != nil {
			return err
		}
		if err := s.resize(op, required); err != nil {
			return err
		}
	} else if extra > 0 {
		if uint64(s.capacity)+uint64(extra) > uint64(MaxCapacity) {
			return s.fail(strxerror.CodeAllocationFailure, op,
				"capacity %d + %d exceeds the maximum capacity", s.capacity, extra)
		}
		if err := s.resize(op, s.capacity+extra); err != nil {
			return err
		}
	}

	if s.cfg.stickyPolicy() == StickyOnReserve {
		s.sticky = true
	}
	return nil
}

// Clear empties s. The representation and capacity are kept.
func (s *String) Clear() error {
	if s == nil {
		return nilString("stringx.String.Clear")
	}
	s.length = 0
	s.buf()[0] = 0
	return nil
}

// Set replaces the content of s with str.
func (s *String) Set(str string) error {
	const op = "stringx.String.Set"
	if s == nil {
		return nilString(op)
	}
	return s.set(op, bytesOf(str))
}

// SetBytes replaces the content of s with b. b may alias the content of s.
func (s *String) SetBytes(b []byte) error {
	const op = "stringx.String.SetBytes"
	if s == nil {
		return nilString(op)
	}
	if b == nil {
		return s.fail(strxerror.CodeInvalidInput, op, "input buffer is nil")
	}
	return s.set(op, b)
}

// set overwrites the content. Contents that fit inline demote a non-sticky
// heap string; longer contents grow the buffer like append does.
func (s *String) set(op string, src []byte) error {
	n, err := s.checkedLen(op, len(src))
	if err != nil {
		return err
	}

	switch {
	case n <= InlineCapacity && s.heap != nil && !s.sticky:
		// copy first: src may point into the heap buffer
		copy(s.inline[:], src)
		s.heap = nil
		s.capacity = 0
		s.gen++
	case n <= InlineCapacity:
		copy(s.buf(), src)
	default:
		if err := s.ensureCapacity(op, n+1); err != nil {
			return err
		}
		copy(s.heap, src)
	}

	s.length = n
	s.buf()[n] = 0
	return nil
}

// Equal reports whether a and b hold the same bytes. Representation and
// capacity are ignored. A nil operand is reported as invalid input.
func Equal(a, b *String) bool {
	if a == nil || b == nil {
		_ = reportf(nil, strxerror.CodeInvalidInput, "stringx.Equal", "string is nil")
		return false
	}
	if a == b {
		return true
	}
	return a.length == b.length && bytes.Equal(a.Bytes(), b.Bytes())
}

// Equal reports whether s and other hold the same bytes.
func (s *String) Equal(other *String) bool {
	return Equal(s, other)
}

// EqualString reports whether s holds exactly the bytes of str.
func (s *String) EqualString(str string) bool {
	return s != nil && stringOf(s.Bytes()) == str
}

// CloneInto makes dst an exact copy of src: content, representation,
// capacity and sticky flag. dst keeps its own settings. On allocation
// failure dst is unchanged.
func CloneInto(dst, src *String) error {
	const op = "stringx.CloneInto"
	if dst == nil || src == nil {
		return nilString(op)
	}
	if dst == src {
		return nil
	}

	switch src.Representation() {
	case Inline:
		copy(dst.inline[:], src.inline[:src.length+1])
		if dst.heap != nil {
			dst.heap = nil
			dst.capacity = 0
			dst.gen++
		}
	case Heap:
		if dst.heap == nil || dst.capacity != src.capacity {
			buf, err := dst.cfg.allocator().Alloc(src.capacity)
			if err != nil {
				return dst.fail(strxerror.CodeAllocationFailure, op, "cannot allocate %d bytes: %v", src.capacity, err)
			}
			if uint32(len(buf)) < src.capacity {
				return dst.fail(strxerror.CodeAllocationFailure, op,
					"allocator returned %d bytes, %d requested", len(buf), src.capacity)
			}
			dst.heap = buf[:src.capacity:src.capacity]
			dst.capacity = src.capacity
			dst.gen++
		}
		copy(dst.heap, src.heap[:src.length+1])
	default:
		return dst.fail(strxerror.CodeUnreachable, op, "unknown representation %d", src.Representation())
	}

	dst.length = src.length
	dst.sticky = src.sticky
	return nil
}

// Clone returns an exact copy of s sharing its settings.
func (s *String) Clone() (*String, error) {
	if s == nil {
		return nil, nilString("stringx.String.Clone")
	}
	dst := &String{cfg: s.cfg}
	if err := CloneInto(dst, s); err != nil {
		return nil, err
	}
	return dst, nil
}
