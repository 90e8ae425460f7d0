// File: options.go
// Title: String Construction Options
// Description: Functional options selecting the diagnostics channel, the
//              heap allocator and the sticky policy of a String.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package stringx

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/msto63/strx/foundation/core/diag"
)

// MaxCapacity is the largest heap capacity a String can reach, terminator
// included.
const MaxCapacity uint32 = math.MaxUint32

// StickyPolicy decides which operations pin a String to the heap.
type StickyPolicy uint8

const (
	// StickyOnReserve sets the sticky flag in Reserve and MakeSticky only.
	StickyOnReserve StickyPolicy = iota

	// StickyOnConstruct marks every String sticky when it is created.
	StickyOnConstruct
)

// String returns the policy name used in configuration files.
func (p StickyPolicy) String() string {
	switch p {
	case StickyOnReserve:
		return "reserve"
	case StickyOnConstruct:
		return "construct"
	default:
		return "unknown"
	}
}

// ParseStickyPolicy parses "reserve" or "construct".
func ParseStickyPolicy(s string) (StickyPolicy, error) {
	switch s {
	case "reserve", "":
		return StickyOnReserve, nil
	case "construct":
		return StickyOnConstruct, nil
	default:
		return StickyOnReserve, fmt.Errorf("unknown sticky policy %q", s)
	}
}

// Allocator provides heap buffers. Alloc must return a zeroed slice of at
// least size bytes or an error.
type Allocator interface {
	Alloc(size uint32) ([]byte, error)
}

// AllocatorFunc adapts a function to Allocator.
type AllocatorFunc func(size uint32) ([]byte, error)

// Alloc calls f.
func (f AllocatorFunc) Alloc(size uint32) ([]byte, error) {
	return f(size)
}

type heapAllocator struct{}

func (heapAllocator) Alloc(size uint32) ([]byte, error) {
	return make([]byte, size), nil
}

// DefaultAllocator allocates with make.
var DefaultAllocator Allocator = heapAllocator{}

// ErrAllocationLimit is returned by LimitAllocator for oversized requests.
var ErrAllocationLimit = errors.New("allocation limit exceeded")

// LimitAllocator refuses requests above Max bytes.
type LimitAllocator struct {
	Max uint32

	// Next serves accepted requests; nil means DefaultAllocator.
	Next Allocator
}

// Alloc implements Allocator.
func (a LimitAllocator) Alloc(size uint32) ([]byte, error) {
	if size > a.Max {
		return nil, fmt.Errorf("%w: %d > %d", ErrAllocationLimit, size, a.Max)
	}
	if a.Next == nil {
		return DefaultAllocator.Alloc(size)
	}
	return a.Next.Alloc(size)
}

// CountingAllocator counts requests and requested bytes. It is safe for
// concurrent use.
type CountingAllocator struct {
	Next Allocator

	calls atomic.Int64
	bytes atomic.Uint64
}

// Alloc implements Allocator.
func (a *CountingAllocator) Alloc(size uint32) ([]byte, error) {
	a.calls.Add(1)
	a.bytes.Add(uint64(size))
	if a.Next == nil {
		return DefaultAllocator.Alloc(size)
	}
	return a.Next.Alloc(size)
}

// Calls returns the number of Alloc calls.
func (a *CountingAllocator) Calls() int64 { return a.calls.Load() }

// Bytes returns the sum of requested sizes.
func (a *CountingAllocator) Bytes() uint64 { return a.bytes.Load() }

// Option configures a String at construction.
type Option func(*settings)

// WithChannel reports failures to ch instead of diag.Default().
func WithChannel(ch *diag.Channel) Option {
	return func(s *settings) {
		s.channel = ch
	}
}

// WithAllocator obtains heap buffers from a.
func WithAllocator(a Allocator) Option {
	return func(s *settings) {
		s.alloc = a
	}
}

// WithStickyPolicy selects the sticky policy.
func WithStickyPolicy(p StickyPolicy) Option {
	return func(s *settings) {
		s.policy = p
	}
}

// settings is shared by a String and the strings derived from it. A nil
// *settings means all defaults.
type settings struct {
	channel *diag.Channel
	alloc   Allocator
	policy  StickyPolicy
}

func newSettings(opts []Option) *settings {
	if len(opts) == 0 {
		return nil
	}
	s := &settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *settings) ch() *diag.Channel {
	if s == nil || s.channel == nil {
		return diag.Default()
	}
	return s.channel
}

func (s *settings) allocator() Allocator {
	if s == nil || s.alloc == nil {
		return DefaultAllocator
	}
	return s.alloc
}

func (s *settings) stickyPolicy() StickyPolicy {
	if s == nil {
		return StickyOnReserve
	}
	return s.policy
}
