package raster

import "github.com/willbeason/multibrot/pkg/transforms"

// EscapeRadiusSq is the squared magnitude beyond which an iterate has escaped.
const EscapeRadiusSq = 4.0

// Escape iterates z -> step.Next(z, c) from z = 0 and returns the number of
// steps taken before |z|^2 exceeded EscapeRadiusSq.
//
// The escape test runs before each step, so a point that never escapes
// returns maxIter and one whose first iterate lies outside the radius returns 1.
func Escape(step transforms.Transform, c complex128, maxIter uint32) uint32 {
	var z complex128
	iter := uint32(0)

	for iter < maxIter {
		zr, zi := real(z), imag(z)
		if zr*zr+zi*zi > EscapeRadiusSq {
			break
		}

		z = step.Next(z, c)
		iter++
	}

	return iter
}
