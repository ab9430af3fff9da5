// Package ppm writes binary portable pixmaps (P6).
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/willbeason/multibrot/pkg/raster"
	"io"
	"os"
)

// MaxValue is the largest channel value of an 8-bit pixmap.
const MaxValue = 255

var (
	ErrEmptyImage   = errors.New("width and height must be > 0")
	ErrRasterLength = errors.New("raster length must be width * height * 3")
)

// An Image is a flat row-major RGB raster ready to be written as a pixmap.
type Image struct {
	Width, Height int
	Raster        []byte
}

// New checks that raster holds exactly width*height RGB pixels.
func New(width, height int, pixels []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrEmptyImage)
	}

	expected, err := raster.Size(width, height)
	if err != nil {
		return nil, err
	}

	if len(pixels) != expected {
		return nil, fmt.Errorf("%dx%d with %d bytes: %w", width, height, len(pixels), ErrRasterLength)
	}

	return &Image{
		Width:  width,
		Height: height,
		Raster: pixels,
	}, nil
}

// Header is the ASCII header preceding the raster.
func (img *Image) Header() string {
	return fmt.Sprintf("P6\n%d %d\n%d\n", img.Width, img.Height, MaxValue)
}

// WriteTo writes the header followed by the raw raster.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, img.Header())
	written := int64(n)
	if err != nil {
		return written, err
	}

	n, err = w.Write(img.Raster)
	written += int64(n)

	return written, err
}

// Save writes the pixmap to a new file at path, replacing any existing file.
func (img *Image) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating pixmap: %w", err)
	}

	w := bufio.NewWriter(f)
	if _, err = img.WriteTo(w); err == nil {
		err = w.Flush()
	}

	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("writing pixmap %q: %w", path, err)
	}
	if closeErr != nil {
		return fmt.Errorf("closing pixmap %q: %w", path, closeErr)
	}

	return nil
}

var _ io.WriterTo = &Image{}
