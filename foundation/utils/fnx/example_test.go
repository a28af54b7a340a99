// File: example_test.go
// Title: Example Tests for fnx
// Description: Executable examples for the function adapters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial example implementation

package fnx_test

import (
	"fmt"
	"strings"

	"github.com/msto63/fnkit/foundation/utils/fnx"
)

func ExampleBind() {
	sum := func(args ...any) any {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	}

	addTen := fnx.Bind(sum, []any{10}, nil)
	fmt.Println(addTen(1, 2))
	// Output:
	// 13
}

func ExampleMemoize() {
	calls := 0
	load := fnx.Memoize(func() string {
		calls++
		return "loaded"
	})

	load()
	load()
	fmt.Println(load(), calls)
	// Output:
	// loaded 1
}

func ExampleRegistry_Call() {
	r := fnx.NewRegistry()
	_ = r.RegisterFunc("repeat", strings.Repeat)

	out, err := r.Call("repeat", "ab", 2)
	fmt.Println(out, err)
	// Output:
	// abab <nil>
}
