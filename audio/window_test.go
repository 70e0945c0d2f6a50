package audio

import (
	"testing"
)

// ramp is a seekable stream whose sample values equal their positions
type ramp struct {
	n   int
	pos int
}

func (r *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && r.pos < r.n {
		samples[n] = [2]float64{float64(r.pos), float64(r.pos)}
		n++
		r.pos++
	}
	return n, n > 0
}

func (r *ramp) Err() error    { return nil }
func (r *ramp) Len() int      { return r.n }
func (r *ramp) Position() int { return r.pos }
func (r *ramp) Seek(p int) error {
	r.pos = p
	return nil
}

func TestWindowLoopsWithinCrop(t *testing.T) {
	w := newWindow(&ramp{n: 10}, 2, 5, true)
	if err := w.Seek(0); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if w.Position() != 2 {
		t.Fatalf("Expected seek clamped to window start 2, got %d", w.Position())
	}

	buf := make([][2]float64, 7)
	n, ok := w.Stream(buf)
	if n != 7 || !ok {
		t.Fatalf("Expected 7 samples ok, got %d %v", n, ok)
	}

	want := []float64{2, 3, 4, 2, 3, 4, 2}
	for i, v := range want {
		if buf[i][0] != v {
			t.Errorf("Sample %d: expected %v, got %v", i, v, buf[i][0])
		}
	}
}

func TestWindowWithoutLoopDrains(t *testing.T) {
	w := newWindow(&ramp{n: 10}, 7, 0, false)
	w.Seek(7)

	buf := make([][2]float64, 8)
	n, ok := w.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Expected 3 samples, got %d %v", n, ok)
	}

	n, ok = w.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Expected drained stream, got %d %v", n, ok)
	}
}

func TestWindowEmptyDoesNotSpin(t *testing.T) {
	w := newWindow(&ramp{n: 0}, 0, 0, true)

	buf := make([][2]float64, 4)
	n, ok := w.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Expected empty window to report drained, got %d %v", n, ok)
	}
}
