package raster

// ProgressInterval is how many pixels are rendered between Progress calls.
const ProgressInterval = 10_000

// Progress observes rendering. done counts rendered pixels out of total.
// It is called every ProgressInterval pixels and once when rendering completes.
type Progress func(done, total int)

type tracker struct {
	observe     Progress
	done, total int
}

func newTracker(observe Progress, total int) *tracker {
	return &tracker{observe: observe, total: total}
}

func (t *tracker) pixel() {
	t.done++
	if t.observe != nil && t.done%ProgressInterval == 0 && t.done != t.total {
		t.observe(t.done, t.total)
	}
}

func (t *tracker) finish() {
	if t.observe != nil {
		t.observe(t.done, t.total)
	}
}
