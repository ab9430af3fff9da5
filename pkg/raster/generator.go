package raster

import (
	"fmt"
	"github.com/willbeason/multibrot/pkg/transforms"
)

// A Generator renders an image into a flat row-major RGB raster.
type Generator interface {
	fmt.Stringer

	// Generate returns a new raster of exactly width*height*3 bytes. A zero
	// dimension yields an empty raster.
	Generate(width, height int) ([]byte, error)
}

// Multibrot renders the multibrot set for z -> z^N + c over View.
//
// N == 2 is the Mandelbrot set.
type Multibrot struct {
	N       float64
	MaxIter uint32
	View    Window

	// Progress, if set, is told how many pixels have been rendered.
	Progress Progress
}

var _ Generator = &Multibrot{}

// NewMultibrot returns a Multibrot over the Full window.
func NewMultibrot(n float64, maxIter uint32) (*Multibrot, error) {
	return NewMultibrotWithView(n, maxIter, Full())
}

func NewMultibrotWithView(n float64, maxIter uint32, view Window) (*Multibrot, error) {
	if maxIter == 0 {
		return nil, ErrMaxIter
	}

	return &Multibrot{
		N:       n,
		MaxIter: maxIter,
		View:    view,
	}, nil
}

func (m *Multibrot) String() string {
	return fmt.Sprintf("Multibrot [n=%g,max_iter=%d]", m.N, m.MaxIter)
}

// Generate renders pixels top row first, left to right. Row py = 0 is View.YMin.
func (m *Multibrot) Generate(width, height int) ([]byte, error) {
	if m.MaxIter == 0 {
		return nil, ErrMaxIter
	}

	size, err := Size(width, height)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return []byte{}, nil
	}

	raster := make([]byte, 0, size)
	step := transforms.For(m.N)
	tracker := newTracker(m.Progress, width*height)

	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			a, b := m.View.MapPixel(px, py, width, height)
			iter := Escape(step, complex(a, b), m.MaxIter)

			c := Color(iter, m.MaxIter)
			raster = append(raster, c.R, c.G, c.B)

			tracker.pixel()
		}
	}
	tracker.finish()

	return raster, nil
}
