package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelLen bounds a Label in bytes; longer values are cut on a rune boundary
const MaxLabelLen = 64

// Gauge is a float64 metric stored as IEEE bits; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add applies delta with a CAS loop and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		v := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}

// Label is a short string metric such as the current song name
type Label struct {
	p atomic.Pointer[string]
}

func (l *Label) Store(v string) {
	if len(v) > MaxLabelLen {
		cut := MaxLabelLen
		for cut > 0 && !utf8.RuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	l.p.Store(&v)
}

func (l *Label) Load() string {
	if p := l.p.Load(); p != nil {
		return *p
	}
	return ""
}
