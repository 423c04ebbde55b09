// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cplx_test

import (
	"fmt"
	"math"

	"github.com/born-ml/numerics/cplx"
)

func ExampleComplex_Div() {
	z := cplx.New(1e300, 1e300)
	w := cplx.New(1e300, -1e300)
	fmt.Println(z.Div(w))
	fmt.Println(cplx.New(1.0, 0).Div(cplx.Zero[float64]()).Equal(cplx.Infinity[float64]()))
	// Output:
	// (0+1i)
	// true
}

func ExampleComplex_Length() {
	fmt.Println(cplx.New(3.0, 4.0).Length())
	fmt.Println(cplx.New(3e-200, 4e-200).LengthSquared())
	fmt.Println(cplx.New(math.Inf(-1), 0).Length())
	// Output:
	// 5
	// 0
	// +Inf
}

func ExampleComplex_Equal() {
	a := cplx.New(math.NaN(), 0)
	b := cplx.New(0, math.Inf(1))
	fmt.Println(a.Equal(b), a.Equal(cplx.Zero[float64]()))
	fmt.Println(a.Canonicalized())
	// Output:
	// true false
	// (+Inf+0i)
}

func ExampleComplex_Reciprocal() {
	divisor := cplx.New(2.0, 0)
	data := []cplx.Complex128{cplx.New(1.0, 1), cplx.New(4.0, -2)}

	if recip, ok := divisor.Reciprocal(); ok {
		for i := range data {
			data[i] = data[i].Mul(recip)
		}
	}
	fmt.Println(data)

	_, ok := cplx.New(math.MaxFloat64/2, 0).Reciprocal()
	fmt.Println(ok)
	// Output:
	// [(0.5+0.5i) (2-1i)]
	// false
}

func ExampleComplex_Normalized() {
	unit, ok := cplx.New(3.0, 4.0).Normalized()
	fmt.Println(unit, ok)

	_, ok = cplx.Zero[float64]().Normalized()
	fmt.Println(ok)
	// Output:
	// (0.6+0.8i) true
	// false
}

func ExampleFromPolar() {
	fmt.Println(cplx.FromPolar(2.0, 0))
	fmt.Println(cplx.FromPolar(0, math.NaN()))
	fmt.Println(cplx.FromPolar(math.Inf(1), math.NaN()).Equal(cplx.Infinity[float64]()))
	// Output:
	// (2+0i)
	// (0+0i)
	// true
}
