// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import "iter"

// Iterate returns the infinite sequence seed, f(seed), f(f(seed)), ...
//
// The sequence is lazy: accumulator runs only when the consumer asks for the
// next element, so pulling n elements calls it exactly n-1 times. Each range
// over the returned sequence starts again from seed. The sequence never ends
// on its own; stop it by breaking out of the range or with [Take].
//
// Panics with [*ArgumentError] if accumulator is nil.
func Iterate[T any](seed T, accumulator func(T) T) iter.Seq[T] {
	seq, err := TryIterate(seed, accumulator)
	if err != nil {
		panic(err)
	}
	return seq
}

// TryIterate is like [Iterate] but reports a nil accumulator as an error
// wrapping [ErrMissingArgument] instead of panicking.
func TryIterate[T any](seed T, accumulator func(T) T) (iter.Seq[T], error) {
	if accumulator == nil {
		return nil, missing("accumulator")
	}
	return func(yield func(T) bool) {
		v := seed
		for yield(v) {
			v = accumulator(v)
		}
	}, nil
}

// Repeat returns the infinite sequence item, item, item, ...
// A nil item is a valid value to repeat.
func Repeat[T any](item T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(item) {
		}
	}
}

// Take returns a sequence of at most the first n elements of seq.
//
// Take stops pulling from seq as soon as the n-th element has been yielded,
// and for n <= 0 it never starts seq at all.
//
// Panics with [*ArgumentError] if seq is nil.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	out, err := TryTake(seq, n)
	if err != nil {
		panic(err)
	}
	return out
}

// TryTake is like [Take] but reports a nil seq as an error wrapping
// [ErrMissingArgument] instead of panicking.
func TryTake[T any](seq iter.Seq[T], n int) (iter.Seq[T], error) {
	if seq == nil {
		return nil, missing("seq")
	}
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}, nil
}
