// File: doc.go
// Title: Package Documentation for stringx
// Description: Small-string-optimised byte string container and a
//              non-owning view over byte sequences.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial string utility collection
// - 2025-03-02 v0.2.0: Replaced helpers with the String container and View

/*
Package stringx provides String, a mutable byte string that keeps short
contents inside the struct and moves to a heap buffer once they outgrow it,
and View, a read-only window into any byte sequence.

# Representation

A String holds at most InlineCapacity (15) content bytes inline, plus a zero
terminator. Longer contents live in a heap buffer whose capacity always
counts the terminator. Promotion allocates exactly length+1 bytes; later
growth doubles the capacity until the content fits.

Shrinking operations (PopLast, PopLastN, Set, SplitOnce) move a String back
inline when the content fits again, unless the String is sticky. Reserve and
MakeSticky set the sticky flag; WithStickyPolicy(StickyOnConstruct) sets it
for every constructed String instead.

	s, _ := stringx.New("Hello")
	_ = s.AppendString(", World!")  // now 13 bytes, still inline
	_ = s.AppendString(" Goodbye!") // promoted to the heap
	fmt.Println(s, s.IsHeap())

# Errors

Failing operations return a *strxerror.Error carrying one of the container
codes (CodeAllocationFailure, CodeOutOfBounds, CodeInvalidInput,
CodeInvalidLength, CodeUnreachable) and report the same error to the
String's diagnostics channel (diag.Default unless WithChannel was given).
A failing operation leaves the String unchanged.

# Views

A View never owns its bytes. Views taken from a String record the String's
generation; any reallocation, demotion or Release invalidates them, which
View.Valid reports. Reading an invalidated view is undefined.

# Concurrency

String and View are not safe for concurrent mutation. Distinct values may be
used from different goroutines; the diagnostics channel is synchronised.
*/
package stringx
