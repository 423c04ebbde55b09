// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cplx provides a numerically robust complex number type generic over
// its component precision.
//
// Compared with Go's built-in complex64 and complex128, Complex adds:
//   - Length and Div that avoid spurious overflow and underflow
//   - A single point at infinity: every value with a NaN or infinite
//     component compares equal to every other such value
//   - Optional results (Normalized, Reciprocal) reported with an ok flag
//     instead of silently returning garbage
//
// Real and Imag return NaN for non-finite values so that callers do not
// accidentally read meaning into the representation of infinity. Use
// Components for the raw stored values.
//
// Example:
//
//	z := cplx.New[float32](3e20, 4e20)
//	fmt.Println(z.Length()) // 5e+20, not +Inf
//
//	w := cplx.New(1e300, 1e300).Div(cplx.New(1e300, -1e300))
//	fmt.Println(w) // (0+1i)
package cplx
