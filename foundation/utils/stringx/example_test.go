// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02

package stringx_test

import (
	"fmt"
	"os"

	"github.com/msto63/strx/foundation/core/diag"
	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/utils/stringx"
)

func ExampleNew() {
	s, _ := stringx.New("Hello")
	_ = s.AppendString(", World!")
	fmt.Println(s, s.Len(), s.Representation())

	_ = s.AppendString(" Goodbye!")
	fmt.Println(s, s.Len(), s.Representation(), s.Capacity())
	// Output:
	// Hello, World! 13 inline
	// Hello, World! Goodbye! 22 heap 23
}

func ExampleString_Reserve() {
	s := stringx.MustNew("id:")
	_ = s.Reserve(64)
	for i := 0; i < 3; i++ {
		_ = s.AppendByte('0' + byte(i))
	}
	fmt.Println(s, s.Capacity(), s.IsSticky())

	_ = s.PopLastN(3)
	fmt.Println(s, s.Representation())
	// Output:
	// id:012 68 true
	// id: heap
}

func ExampleString_SplitOnce() {
	s := stringx.MustNew("user=admin,role=ops")
	tail, found, _ := s.SplitOnce(',')
	fmt.Println(s, tail, found)
	// Output: user=admin role=ops true
}

func ExampleString_TrimWhitespace() {
	s := stringx.MustNew("  a b\tc  ")
	_ = s.TrimWhitespace(stringx.TrimBoth)
	fmt.Printf("%q\n", s)
	_ = s.TrimWhitespace(stringx.TrimAll)
	fmt.Printf("%q\n", s)
	// Output:
	// "a b\tc"
	// "abc"
}

func ExampleView_SplitAll() {
	v := stringx.ViewString("10, 20,x,30")
	for _, field := range v.SplitAll(',') {
		if n, ok := field.ParseInt(); ok {
			fmt.Println(n)
		} else {
			fmt.Printf("skip %q\n", field)
		}
	}
	// Output:
	// 10
	// 20
	// skip "x"
	// 30
}

func ExampleView_Sub() {
	s := stringx.MustNew("Hello, World!")
	world, _ := s.Sub(7, 5)
	_ = world.Print(os.Stdout, "sub")
	fmt.Println(world.Valid())
	// Output:
	// sub: World
	// true
}

func ExampleWithChannel() {
	ch := diag.New(diag.WithCallback(func(info diag.ErrorInfo) {
		fmt.Println("reported:", info.Code, info.Operation)
	}))

	s := stringx.MustNew("", stringx.WithChannel(ch))
	_, err := s.PopLast()
	fmt.Println(strxerror.HasCode(err, strxerror.CodeInvalidLength))
	// Output:
	// reported: INVALID_LENGTH stringx.String.PopLast
	// true
}
