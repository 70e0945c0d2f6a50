package status

import "sync/atomic"

// Registry groups the metric families published by the clock and systems
// Values are atomics, so any goroutine may read while the frame loop writes
type Registry struct {
	Flags    *Family[atomic.Bool]
	Counters *Family[atomic.Int64]
	Gauges   *Family[Gauge]
	Labels   *Family[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Flags:    newFamily[atomic.Bool](),
		Counters: newFamily[atomic.Int64](),
		Gauges:   newFamily[Gauge](),
		Labels:   newFamily[Label](),
	}
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	return r.Flags.Len() + r.Counters.Len() + r.Gauges.Len() + r.Labels.Len()
}

// Snapshot copies every metric value into a flat map keyed by name
func (r *Registry) Snapshot() map[string]any {
	return r.Prefixed("")
}

// Prefixed copies the metrics whose name starts with prefix, e.g. "rhythm."
func (r *Registry) Prefixed(prefix string) map[string]any {
	out := make(map[string]any)
	r.Flags.Each(prefix, func(k string, m *atomic.Bool) { out[k] = m.Load() })
	r.Counters.Each(prefix, func(k string, m *atomic.Int64) { out[k] = m.Load() })
	r.Gauges.Each(prefix, func(k string, m *Gauge) { out[k] = m.Get() })
	r.Labels.Each(prefix, func(k string, m *Label) { out[k] = m.Load() })
	return out
}
