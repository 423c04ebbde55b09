package cplx

import "errors"

// ErrPolarDomain is the panic value (wrapped) raised by FromPolar when the
// phase is not finite and the length is neither zero nor infinite. This is a
// caller contract violation, not a runtime condition to recover from.
var ErrPolarDomain = errors.New("cplx: non-finite phase requires zero or infinite length")
