package transforms

// A Transform advances the iterate z of an escape-time fractal with constant c.
type Transform interface {
	Next(z complex128, c complex128) complex128
}

// For returns the step function for z -> z^n + c.
//
// The classic case n == 2 uses plain multiplication rather than the general
// complex power so the result does not depend on polar-form rounding.
func For(n float64) Transform {
	if n == 2.0 {
		return Mandelbrot{}
	}

	return Multibrot{N: n}
}

var (
	_ Transform = Mandelbrot{}
	_ Transform = Multibrot{}
)
