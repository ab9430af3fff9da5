package main

import (
	"bytes"
	"errors"
	"github.com/willbeason/multibrot/pkg/raster"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := mainCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_SingleIteration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")

	stdout, _, err := execute(t, "--width", "3", "--height", "3", "--max-iter", "1", "-o", path)
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := append([]byte("P6\n3 3\n255\n"), make([]byte, 27)...)
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	if !strings.Contains(stdout, `Wrote 3 x 3 multibrot (n=2) image to "`+path+`"`) {
		t.Errorf("unexpected summary %q", stdout)
	}
}

func TestRun_MatchesGenerator(t *testing.T) {
	tcs := []struct {
		name string
		args []string
		n    float64
		view raster.Window
	}{
		{name: "default", args: nil, n: 2, view: raster.Full()},
		{name: "zoomed", args: []string{"-z"}, n: 2, view: raster.Zoomed()},
		{name: "classic cubic", args: []string{"--view", "classic", "-n", "3"}, n: 3, view: raster.Classic()},
		{
			name: "zoom and pan",
			args: []string{"--zoom", "4", "--pan", "-0.5,0"},
			n:    2,
			view: raster.Full().Zoom(4).Pan(-0.5, 0),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.ppm")
			args := append([]string{"--width", "32", "--height", "24", "--max-iter", "40", "-o", path}, tc.args...)

			if _, _, err := execute(t, args...); err != nil {
				t.Fatal(err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			m, err := raster.NewMultibrotWithView(tc.n, 40, tc.view)
			if err != nil {
				t.Fatal(err)
			}
			pixels, err := m.Generate(32, 24)
			if err != nil {
				t.Fatal(err)
			}

			want := append([]byte("P6\n32 24\n255\n"), pixels...)
			if !bytes.Equal(got, want) {
				t.Errorf("file differs from %v over %v", m, tc.view)
			}
		})
	}
}

func TestRun_VerboseProgress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")

	_, stderr, err := execute(t, "--width", "250", "--height", "100", "--max-iter", "5", "-v", "-o", path)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"msg=rendering", "pixels=10000", "percent=100"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("log %q does not contain %q", stderr, want)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ppm")

	tcs := []struct {
		name string
		args []string
		want error
	}{
		{name: "zero max-iter", args: []string{"--max-iter", "0", "-o", path}, want: raster.ErrMaxIter},
		{name: "zero width", args: []string{"--width", "0", "-o", path}, want: errEmptyDimensions},
		{name: "zero height", args: []string{"--height", "0", "-o", path}, want: errEmptyDimensions},
		{name: "zero zoom", args: []string{"--zoom", "0", "-o", path}, want: errZoom},
		{name: "negative zoom", args: []string{"--zoom=-2", "-o", path}, want: errZoom},
		{name: "infinite exponent", args: []string{"-n", "+Inf", "-o", path}, want: errExponent},
		{name: "missing directory", args: []string{"--width", "2", "--height", "2", "-o", filepath.Join(dir, "missing", "out.ppm")}, want: os.ErrNotExist},
		{name: "zoomed and view", args: []string{"-z", "--view", "classic", "-o", path}},
		{name: "unknown view", args: []string{"--view", "elephant", "-o", path}},
		{name: "bad pan", args: []string{"--pan", "1", "-o", path}},
		{name: "width out of range", args: []string{"--width", "70000", "-o", path}},
		{name: "positional argument", args: []string{"extra", "-o", path}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			if err == nil {
				t.Fatal("got nil error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("failed runs wrote %q", path)
	}
}

func TestConfig_Window(t *testing.T) {
	tcs := []struct {
		name string
		cfg  config
		want raster.Window
	}{
		{name: "default", cfg: config{view: viewFull, zoom: 1}, want: raster.Full()},
		{name: "zoomed flag", cfg: config{view: viewFull, zoomed: true, zoom: 1}, want: raster.Zoomed()},
		{name: "classic", cfg: config{view: viewClassic, zoom: 1}, want: raster.Classic()},
		{
			name: "zoom then pan",
			cfg:  config{view: viewClassic, zoom: 2, pan: panFlag{dx: 0.5, dy: -0.25}},
			want: raster.Classic().Zoom(2).Pan(0.5, -0.25),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.window(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPanFlag(t *testing.T) {
	var p panFlag
	if err := p.Set("-0.5, 0.25"); err != nil {
		t.Fatal(err)
	}
	if p.dx != -0.5 || p.dy != 0.25 {
		t.Errorf("got %+v", p)
	}
	if got, want := p.String(), "-0.5,0.25"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	for _, bad := range []string{"", "1", "a,1", "1,b"} {
		if err := p.Set(bad); err == nil {
			t.Errorf("Set(%q) succeeded", bad)
		}
	}
}

func TestViewFlag(t *testing.T) {
	v := viewFull
	if err := v.Set("Zoomed"); err != nil {
		t.Fatal(err)
	}
	if v != viewZoomed || v.Window() != raster.Zoomed() {
		t.Errorf("got %q", v)
	}

	if err := v.Set("seahorse"); err == nil {
		t.Error("Set(seahorse) succeeded")
	}
	if v != viewZoomed {
		t.Errorf("failed Set changed view to %q", v)
	}
}
