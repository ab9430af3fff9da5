package raster

import "image/color"

// Inside is the color of points which do not escape.
var Inside = color.RGBA{A: 0xff}

// Color returns the palette color for a point which took iter steps of a
// maxIter budget. Points which used the whole budget are Inside.
func Color(iter, maxIter uint32) color.RGBA {
	if iter >= maxIter {
		return Inside
	}

	return Ramp(float64(iter) / float64(maxIter))
}

// Ramp is the fixed polynomial color ramp for t in [0, 1]. It is black at
// both ends.
//
// Channels are truncated, not rounded, to 8 bits.
func Ramp(t float64) color.RGBA {
	u := 1.0 - t

	return color.RGBA{
		R: channel(9.0 * u * t * t * t * 255.0),
		G: channel(15.0 * u * u * t * t * 255.0),
		B: channel(8.5 * u * u * u * t * 255.0),
		A: 0xff,
	}
}

func channel(v float64) uint8 {
	switch {
	case !(v > 0):
		// Also catches NaN.
		return 0
	case v >= 255:
		return 255
	}

	return uint8(v)
}
