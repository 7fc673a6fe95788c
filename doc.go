// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pfun provides small generic combinators for expression-oriented
// control flow in Go.
//
// Every function is stateless and independent of the others. None of them
// starts goroutines, blocks, or holds resources; caller-supplied functions
// run on the caller's goroutine exactly as many times as documented.
//
// # Sequences
//
// Lazy, unbounded [iter.Seq] generators:
//
//   - [Iterate]: seed, f(seed), f(f(seed)), ...
//   - [Repeat]: the same item forever
//   - [Take]: at most the first n elements of a sequence
//
// Nothing is computed until the consumer pulls. Pulling n elements from
// Iterate calls the accumulator n-1 times. The generators never end on their
// own; stop them by breaking out of the range loop or by wrapping them in Take:
//
//	for v := range pfun.Take(pfun.Iterate(1, func(x int) int { return x * 2 }), 3) {
//	    fmt.Println(v) // 1, 2, 4
//	}
//
// # Expression Blocks
//
//   - [Scope]: run a block of statements and use its result as an expression
//   - [To]: mutate a value in place and return it
//   - [Identity]: the neutral func(T) T
//
// # Loops
//
// [Until] replaces a tail-recursive function with a flat loop: it applies an
// accumulator to a seed until a condition holds, testing the condition first.
// Stack depth is constant regardless of the number of steps.
//
// # Errors
//
// Required function arguments must not be nil. The expression-style
// combinators panic with an [*ArgumentError] before any callback runs;
// the Try variants ([TryIterate], [TryTake], [TryScope], [TryTo], [TryUntil])
// return it instead. Either way the error wraps [ErrMissingArgument]:
//
//	if _, err := pfun.TryScope[int](nil); errors.Is(err, pfun.ErrMissingArgument) {
//	    // handle
//	}
//
// Value arguments (seeds, items, mutable values) are never validated; nil is
// an ordinary value. Panics raised by callbacks propagate unchanged.
package pfun
