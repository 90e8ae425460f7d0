// File: capacity.go
// Title: Promotion, Growth and Demotion
// Description: All transitions between the inline and heap representations go
//              through ensureCapacity, resize and maybeDemote.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import (
	"fortio.org/safecast"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

// ensureCapacity makes the active buffer hold at least required bytes,
// terminator included. Inline strings are promoted to exactly required
// bytes; heap buffers double until they fit.
func (s *String) ensureCapacity(op string, required uint32) error {
	if s.heap == nil {
		if required <= InlineCapacity+1 {
			return nil
		}
		return s.resize(op, required)
	}
	if s.capacity >= required {
		return nil
	}

	newCap := s.capacity
	for newCap < required {
		if newCap > MaxCapacity/2 {
			newCap = MaxCapacity
			break
		}
		newCap *= 2
	}
	return s.resize(op, newCap)
}

// resize moves the content and terminator into a fresh heap buffer of newCap
// bytes. On failure s is unchanged.
func (s *String) resize(op string, newCap uint32) error {
	buf, err := s.cfg.allocator().Alloc(newCap)
	if err != nil {
		return s.fail(strxerror.CodeAllocationFailure, op, "cannot allocate %d bytes: %v", newCap, err)
	}
	if uint32(len(buf)) < newCap {
		return s.fail(strxerror.CodeAllocationFailure, op,
			"allocator returned %d bytes, %d requested", len(buf), newCap)
	}
	buf = buf[:newCap:newCap]
	copy(buf, s.buf()[:s.length+1])

	s.heap = buf
	s.capacity = newCap
	s.gen++
	return nil
}

// maybeDemote moves a non-sticky heap string whose content fits inline back
// into the struct.
func (s *String) maybeDemote() {
	if s.heap == nil || s.sticky || s.length > InlineCapacity {
		return
	}
	copy(s.inline[:], s.heap[:s.length+1])
	s.heap = nil
	s.capacity = 0
	s.gen++
}

// checkedLen converts a Go length to a content length. The content plus its
// terminator must fit in MaxCapacity.
func (s *String) checkedLen(op string, n int) (uint32, error) {
	l, err := safecast.Conv[uint32](n)
	if err != nil || l == MaxCapacity {
		return 0, reportAt(s.settings(), 1, strxerror.CodeAllocationFailure, op,
			"length %d exceeds the maximum capacity", n)
	}
	return l, nil
}

// required returns length+extra+1, the buffer size needed to add extra bytes.
func (s *String) required(op string, extra uint32) (uint32, error) {
	total, err := safecast.Conv[uint32](uint64(s.length) + uint64(extra) + 1)
	if err != nil {
		return 0, reportAt(s.settings(), 1, strxerror.CodeAllocationFailure, op,
			"length %d + %d exceeds the maximum capacity", s.length, extra)
	}
	return total, nil
}
