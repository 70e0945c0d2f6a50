package audio

import (
	"github.com/gopxl/beep"
)

// window streams the [start, end) sample range of a seekable stream
// When loop is set, reaching end seeks back to start
type window struct {
	s     beep.StreamSeeker
	start int
	end   int
	loop  bool
	err   error
}

// newWindow clamps the range to the stream length; end <= start selects the whole tail
func newWindow(s beep.StreamSeeker, start, end int, loop bool) *window {
	length := s.Len()
	start = min(max(start, 0), length)
	if end <= start || end > length {
		end = length
	}
	return &window{s: s, start: start, end: end, loop: loop}
}

func (w *window) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if w.s.Position() >= w.end {
			if !w.loop || !w.rewind() {
				break
			}
		}

		chunk := samples[n:]
		if remaining := w.end - w.s.Position(); len(chunk) > remaining {
			chunk = chunk[:remaining]
		}

		sn, sok := w.s.Stream(chunk)
		n += sn
		if !sok || sn == 0 {
			// Stream ran dry before the declared end
			w.end = w.s.Position()
		}
	}
	return n, n > 0
}

func (w *window) Err() error {
	if w.err != nil {
		return w.err
	}
	return w.s.Err()
}

// Position returns the absolute sample position in the underlying stream
func (w *window) Position() int {
	return w.s.Position()
}

// Seek moves to an absolute sample position clamped into the window
func (w *window) Seek(p int) error {
	p = min(max(p, w.start), max(w.end-1, w.start))
	return w.s.Seek(p)
}

func (w *window) rewind() bool {
	if w.end <= w.start {
		return false
	}
	if err := w.s.Seek(w.start); err != nil {
		w.err = err
		return false
	}
	return true
}
