// File: trim.go
// Title: Whitespace Trimming and Splitting
// Description: In-place whitespace trimming and single-separator splitting
//              of a String.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import (
	"bytes"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

// TrimMode selects which whitespace TrimWhitespace removes.
type TrimMode uint8

const (
	TrimFront TrimMode = 1 << iota
	TrimBack
	TrimAll

	// TrimBoth removes leading and trailing whitespace.
	TrimBoth = TrimFront | TrimBack
)

// String returns the mode name.
func (m TrimMode) String() string {
	switch m {
	case TrimFront:
		return "front"
	case TrimBack:
		return "back"
	case TrimBoth:
		return "both"
	case TrimAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseTrimMode parses "front", "back", "both" or "all".
func ParseTrimMode(s string) (TrimMode, bool) {
	switch s {
	case "front":
		return TrimFront, true
	case "back":
		return TrimBack, true
	case "both":
		return TrimBoth, true
	case "all":
		return TrimAll, true
	default:
		return 0, false
	}
}

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// TrimWhitespace removes whitespace in place. TrimAll removes every
// whitespace byte, the other modes only the leading and/or trailing run.
// Capacity and representation never change.
func (s *String) TrimWhitespace(mode TrimMode) error {
	const op = "stringx.String.TrimWhitespace"
	if s == nil {
		return nilString(op)
	}
	if mode == 0 || mode > TrimAll {
		return s.fail(strxerror.CodeInvalidInput, op, "unknown trim mode %d", mode)
	}

	buf := s.buf()
	content := buf[:s.length]

	if mode == TrimAll {
		w := 0
		for _, c := range content {
			if !isSpace(c) {
				buf[w] = c
				w++
			}
		}
		s.length = uint32(w)
		buf[s.length] = 0
		return nil
	}

	start, end := 0, len(content)
	if mode&TrimFront != 0 {
		for start < end && isSpace(content[start]) {
			start++
		}
	}
	if mode&TrimBack != 0 {
		for end > start && isSpace(content[end-1]) {
			end--
		}
	}
	if start > 0 {
		copy(buf, content[start:end])
	}
	s.length = uint32(end - start)
	buf[s.length] = 0
	return nil
}

// SplitOnce splits s at the first sep. The bytes after sep are returned as a
// new String with the settings of s, and s keeps the bytes before it. If sep
// does not occur, s is unchanged and found is false. Truncation follows the
// demotion rule of PopLastN.
func (s *String) SplitOnce(sep byte) (tail *String, found bool, err error) {
	const op = "stringx.String.SplitOnce"
	if s == nil {
		return nil, false, nilString(op)
	}

	content := s.Bytes()
	idx := bytes.IndexByte(content, sep)
	if idx < 0 {
		return nil, false, nil
	}

	tail, err = construct(op, content[idx+1:], s.cfg)
	if err != nil {
		return nil, false, err
	}

	s.length = uint32(idx)
	s.buf()[s.length] = 0
	s.maybeDemote()
	return tail, true, nil
}
