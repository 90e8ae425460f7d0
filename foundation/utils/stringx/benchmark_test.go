// File: benchmark_test.go
// Title: Performance Benchmarks for StringX
// Description: Append, split and search benchmarks, compared against the
//              standard library builders where one exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package stringx

import (
	"bytes"
	"strings"
	"testing"
)

func BenchmarkAppendInline(b *testing.B) {
	ch := quiet()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var s String
		s.cfg = &settings{channel: ch}
		for j := 0; j < InlineCapacity; j++ {
			_ = s.AppendByte('a')
		}
	}
}

func BenchmarkAppendHeap(b *testing.B) {
	ch := quiet()
	chunk := strings.Repeat("x", 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := MustNew("", WithChannel(ch))
		for j := 0; j < 32; j++ {
			_ = s.AppendString(chunk)
		}
	}
}

func BenchmarkAppendReserved(b *testing.B) {
	ch := quiet()
	chunk := strings.Repeat("x", 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := MustNew("", WithChannel(ch))
		_ = s.Reserve(32 * 32)
		for j := 0; j < 32; j++ {
			_ = s.AppendString(chunk)
		}
	}
}

func BenchmarkStringsBuilder(b *testing.B) {
	chunk := strings.Repeat("x", 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		for j := 0; j < 32; j++ {
			sb.WriteString(chunk)
		}
		_ = sb.String()
	}
}

func BenchmarkSplitOnce(b *testing.B) {
	ch := quiet()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := MustNew("key=value", WithChannel(ch))
		_, _, _ = s.SplitOnce('=')
	}
}

func BenchmarkViewSplitAll(b *testing.B) {
	v := ViewString(strings.Repeat("field,", 64))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.SplitAll(',')
	}
}

func BenchmarkViewIndex(b *testing.B) {
	hay := ViewString(strings.Repeat("abcdefgh", 128) + "needle")
	needle := ViewString("needle")
	for i := 0; i < b.N; i++ {
		_ = hay.Index(needle)
	}
}

func BenchmarkBytesIndex(b *testing.B) {
	hay := []byte(strings.Repeat("abcdefgh", 128) + "needle")
	needle := []byte("needle")
	for i := 0; i < b.N; i++ {
		_ = bytes.Index(hay, needle)
	}
}
