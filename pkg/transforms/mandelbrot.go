package transforms

// Mandelbrot is the quadratic step z -> z^2 + c.
type Mandelbrot struct{}

func (Mandelbrot) Next(z complex128, c complex128) complex128 {
	// (zr + i*zi)^2 = (zr^2 - zi^2) + i(2*zr*zi)
	zr, zi := real(z), imag(z)
	return complex(zr*zr-zi*zi+real(c), 2.0*zr*zi+imag(c))
}
