// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

// Until emulates a tail-recursive function as a flat loop.
//
// Starting from seed, it tests condition on the current value and, while the
// test fails, replaces the value with accumulator(value). It returns the
// first value for which condition holds. condition is always tested before
// accumulator runs, so a seed that already satisfies it is returned as is.
//
// The recursive definition
//
//	func gcd(a, b int) int {
//	    if b == 0 {
//	        return a
//	    }
//	    return gcd(b, a%b)
//	}
//
// becomes
//
//	r := pfun.Until([2]int{a, b},
//	    func(p [2]int) bool { return p[1] == 0 },
//	    func(p [2]int) [2]int { return [2]int{p[1], p[0] % p[1]} })
//	gcd := r[0]
//
// Stack depth stays constant however many steps are taken. There is no
// iteration bound: if condition never holds, Until never returns.
//
// Panics with [*ArgumentError] if condition or accumulator is nil.
func Until[T any](seed T, condition func(T) bool, accumulator func(T) T) T {
	v, err := TryUntil(seed, condition, accumulator)
	if err != nil {
		panic(err)
	}
	return v
}

// TryUntil is like [Until] but reports a nil condition or accumulator as an
// error wrapping [ErrMissingArgument] instead of panicking. condition is
// checked first. Neither callback runs when an error is returned.
func TryUntil[T any](seed T, condition func(T) bool, accumulator func(T) T) (T, error) {
	if condition == nil {
		var zero T
		return zero, missing("condition")
	}
	if accumulator == nil {
		var zero T
		return zero, missing("accumulator")
	}
	for !condition(seed) {
		seed = accumulator(seed)
	}
	return seed, nil
}
