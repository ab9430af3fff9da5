package main

import (
	"fmt"
	"github.com/spf13/pflag"
	"github.com/willbeason/multibrot/pkg/raster"
	"strconv"
	"strings"
)

// viewFlag names one of the preset windows.
type viewFlag string

const (
	viewFull    viewFlag = "full"
	viewZoomed  viewFlag = "zoomed"
	viewClassic viewFlag = "classic"
)

func (v *viewFlag) String() string {
	return string(*v)
}

func (v *viewFlag) Set(s string) error {
	switch f := viewFlag(strings.ToLower(s)); f {
	case viewFull, viewZoomed, viewClassic:
		*v = f
		return nil
	}

	return fmt.Errorf("unknown view %q, want one of %s, %s, %s", s, viewFull, viewZoomed, viewClassic)
}

func (v *viewFlag) Type() string {
	return "view"
}

func (v *viewFlag) Window() raster.Window {
	switch *v {
	case viewZoomed:
		return raster.Zoomed()
	case viewClassic:
		return raster.Classic()
	}

	return raster.Full()
}

// panFlag is an offset written as "dx,dy".
type panFlag struct {
	dx, dy float64
}

func (p *panFlag) String() string {
	return fmt.Sprintf("%g,%g", p.dx, p.dy)
}

func (p *panFlag) Set(s string) error {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return fmt.Errorf("pan %q must be written as dx,dy", s)
	}

	dx, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("pan dx: %w", err)
	}

	dy, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("pan dy: %w", err)
	}

	p.dx, p.dy = dx, dy
	return nil
}

func (p *panFlag) Type() string {
	return "dx,dy"
}

var (
	_ pflag.Value = new(viewFlag)
	_ pflag.Value = &panFlag{}
)
