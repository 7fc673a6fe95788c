// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfun

// Identity returns its argument.
//
// Identity[T] is a named generic function, so using it as a function value
// produces a static funcval per instantiation and does not allocate.
func Identity[T any](x T) T { return x }
