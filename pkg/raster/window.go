package raster

import "fmt"

// A Window is the axis-aligned rectangle of the complex plane mapped onto
// the pixel grid. Windows are values; Zoom and Pan return new Windows.
//
// Bounds should be finite with XMin < XMax and YMin < YMax.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewWindow stores the bounds verbatim.
func NewWindow(xMin, xMax, yMin, yMax float64) Window {
	return Window{
		XMin: xMin,
		XMax: xMax,
		YMin: yMin,
		YMax: yMax,
	}
}

// Full covers the whole Mandelbrot set: [-2,2]x[-2,2].
func Full() Window {
	return NewWindow(-2.0, 2.0, -2.0, 2.0)
}

// Zoomed is a closer view around the origin: [-0.75,0.75]x[-0.75,0.75].
func Zoomed() Window {
	return NewWindow(-0.75, 0.75, -0.75, 0.75)
}

// Classic is the traditional landscape framing of the Mandelbrot set: [-2,1]x[-1,1].
func Classic() Window {
	return NewWindow(-2.0, 1.0, -1.0, 1.0)
}

// Zoom keeps the center and divides both width and height by factor.
// A factor above 1 zooms in and one in (0,1) zooms out. factor must be positive.
func (w Window) Zoom(factor float64) Window {
	cx := (w.XMin + w.XMax) / 2.0
	cy := (w.YMin + w.YMax) / 2.0
	hw := (w.XMax - w.XMin) / 2.0 / factor
	hh := (w.YMax - w.YMin) / 2.0 / factor

	return Window{
		XMin: cx - hw,
		XMax: cx + hw,
		YMin: cy - hh,
		YMax: cy + hh,
	}
}

// Pan translates the window by (dx, dy).
func (w Window) Pan(dx, dy float64) Window {
	return Window{
		XMin: w.XMin + dx,
		XMax: w.XMax + dx,
		YMin: w.YMin + dy,
		YMax: w.YMax + dy,
	}
}

// MapPixel returns the point (a, b) of the plane at pixel (px, py) of a
// width x height grid. Pixel (0, 0) maps to (XMin, YMin) and
// (width-1, height-1) to (XMax, YMax); there is no vertical flip.
//
// A grid one pixel wide or tall maps that pixel to the minimum bound.
func (w Window) MapPixel(px, py, width, height int) (float64, float64) {
	denomX := float64(max(width-1, 1))
	denomY := float64(max(height-1, 1))

	a := w.XMin + (float64(px)/denomX)*(w.XMax-w.XMin)
	b := w.YMin + (float64(py)/denomY)*(w.YMax-w.YMin)
	return a, b
}

func (w Window) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]", w.XMin, w.XMax, w.YMin, w.YMax)
}
