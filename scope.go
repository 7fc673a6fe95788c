// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

// Scope calls supplier once and returns its result.
//
// It lets a block of statements stand where only an expression is allowed:
//
//	label := pfun.Scope(func() string {
//	    if n == 1 {
//	        return "item"
//	    }
//	    return "items"
//	})
//
// Panics with [*ArgumentError] if supplier is nil.
func Scope[T any](supplier func() T) T {
	v, err := TryScope(supplier)
	if err != nil {
		panic(err)
	}
	return v
}

// TryScope is like [Scope] but reports a nil supplier as an error wrapping
// [ErrMissingArgument] instead of panicking.
func TryScope[T any](supplier func() T) (T, error) {
	if supplier == nil {
		var zero T
		return zero, missing("supplier")
	}
	return supplier(), nil
}

// To calls mutator(mutable) once and returns mutable.
//
// mutable is neither copied nor validated. For pointers, maps and other
// reference types the result reflects whatever mutator changed; for plain
// values To returns mutable unchanged.
//
//	cfg := pfun.To(&Config{}, func(c *Config) { c.Retries = 3 })
//
// Panics with [*ArgumentError] if mutator is nil.
func To[T any](mutable T, mutator func(T)) T {
	v, err := TryTo(mutable, mutator)
	if err != nil {
		panic(err)
	}
	return v
}

// TryTo is like [To] but reports a nil mutator as an error wrapping
// [ErrMissingArgument] instead of panicking. On error mutable is returned
// untouched.
func TryTo[T any](mutable T, mutator func(T)) (T, error) {
	if mutator == nil {
		return mutable, missing("mutator")
	}
	mutator(mutable)
	return mutable, nil
}
