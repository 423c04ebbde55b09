package tensor

// Host-side reductions. They read the tensor data directly and run on the
// calling goroutine, whatever the backend.

// Sum returns the sum of all elements. Complex and float sums are
// accumulated in float64, so a single non-finite element makes a complex
// sum non-finite.
//
// Example:
//
//	total := tensor.Sum(z) // cplx.Complex64 for a Complex64 tensor
func Sum[T DType, B Backend](t *Tensor[T, B]) T {
	if counts, ok := any(t.Data()).([]int32); ok {
		var s int32
		for _, v := range counts {
			s += v
		}
		return any(s).(T)
	}
	re, im := sumParts(t)
	return fromParts[T](re, im)
}

// Mean returns the arithmetic mean of all elements of a complex or float
// tensor.
func Mean[T DType, B Backend](t *Tensor[T, B]) T {
	re, im := sumParts(t)
	n := float64(t.NumElements())
	return fromParts[T](re/n, im/n)
}

func sumParts[T DType, B Backend](t *Tensor[T, B]) (re, im float64) {
	for _, v := range t.Data() {
		r, i := parts(v)
		re += r
		im += i
	}
	return re, im
}

// All reports whether every element of a Bool tensor is true.
func All[B Backend](t *Tensor[bool, B]) bool {
	for _, v := range t.Data() {
		if !v {
			return false
		}
	}
	return true
}

// Any reports whether at least one element of a Bool tensor is true.
func Any[B Backend](t *Tensor[bool, B]) bool {
	for _, v := range t.Data() {
		if v {
			return true
		}
	}
	return false
}

// Count returns the number of true elements of a Bool tensor.
func Count[B Backend](t *Tensor[bool, B]) int {
	n := 0
	for _, v := range t.Data() {
		if v {
			n++
		}
	}
	return n
}
