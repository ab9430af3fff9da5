package transforms

import "math/cmplx"

// Multibrot is the step z -> z^N + c for a real exponent N.
//
// z^N is the principal value: magnitude |z|^N and argument N*arg(z).
type Multibrot struct {
	N float64
}

func (m Multibrot) Next(z complex128, c complex128) complex128 {
	return cmplx.Pow(z, complex(m.N, 0)) + c
}
