// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

import "errors"

// ErrMissingArgument is the kind of every error reported by this package.
// It is returned when a required function argument is nil.
var ErrMissingArgument = errors.New("pfun: missing argument")

// ArgumentError names the nil function argument that was rejected.
// It unwraps to [ErrMissingArgument].
//
// Panicking combinators panic with a *ArgumentError value, so a recovered
// value can be checked with errors.Is after asserting it to error.
type ArgumentError struct {
	Name string
}

func (e *ArgumentError) Error() string {
	return ErrMissingArgument.Error() + ": " + e.Name
}

func (e *ArgumentError) Unwrap() error { return ErrMissingArgument }

func missing(name string) error { return &ArgumentError{Name: name} }
