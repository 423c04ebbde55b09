package cplx

import (
	"fmt"
	"unsafe"
)

// String formats z the way Go prints complex64 (for 32-bit R) or complex128,
// e.g. "(1+2i)". Raw components are printed, NaN and Inf included.
func (z Complex[R]) String() string {
	if unsafe.Sizeof(z.x) == 4 {
		return fmt.Sprint(z.Complex64())
	}
	return fmt.Sprint(z.Complex128())
}

// Format implements fmt.Formatter with the verbs, flags, width and precision
// accepted for Go's native complex types.
func (z Complex[R]) Format(f fmt.State, verb rune) {
	format := fmt.FormatString(f, verb)
	if unsafe.Sizeof(z.x) == 4 {
		fmt.Fprintf(f, format, z.Complex64())
		return
	}
	fmt.Fprintf(f, format, z.Complex128())
}
