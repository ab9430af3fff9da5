package raster

import (
	"fmt"
	"math"
)

// BytesPerPixel is the number of raster bytes per pixel: R, G, B.
const BytesPerPixel = 3

// Size returns width*height*BytesPerPixel, the length of a raster of those
// dimensions. It fails instead of wrapping if the product does not fit in an int.
func Size(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%dx%d: %w", width, height, ErrNegativeDimensions)
	}
	if width == 0 || height == 0 {
		return 0, nil
	}

	if width > math.MaxInt/height/BytesPerPixel {
		return 0, fmt.Errorf("%dx%d: %w", width, height, ErrImageTooLarge)
	}

	return width * height * BytesPerPixel, nil
}
