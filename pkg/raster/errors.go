package raster

import "errors"

var (
	ErrMaxIter            = errors.New("max_iter must be > 0")
	ErrNegativeDimensions = errors.New("width and height must not be negative")
	ErrImageTooLarge      = errors.New("image dimensions too large")
)
