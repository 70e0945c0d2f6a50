package service

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

type entry struct {
	svc  Service
	args []any
}

// Hub owns the process services and drives them through Init, Start and Stop
// Dependencies come first; otherwise registration order is kept
type Hub struct {
	mu      sync.Mutex
	entries []entry
	index   map[string]int
	order   []int // Resolved on InitAll
	running []int // Started, in start order
}

func NewHub() *Hub {
	return &Hub{index: make(map[string]int)}
}

// Register adds svc; args are handed to its Init
func (h *Hub) Register(svc Service, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, ok := h.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.index[name] = len(h.entries)
	h.entries = append(h.entries, entry{svc: svc, args: args})
	h.order = nil
	return nil
}

// Lookup returns the service registered as name if it has type T
func Lookup[T Service](h *Hub, name string) (T, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	i, ok := h.index[name]
	if !ok {
		return zero, false
	}
	svc, ok := h.entries[i].svc.(T)
	return svc, ok
}

// InitAll resolves the dependency order and initializes every service
// A failed Init stops the services initialized before it
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolve()
	if err != nil {
		return err
	}
	h.order = order

	for n, i := range order {
		e := h.entries[i]
		if err := e.svc.Init(e.args...); err != nil {
			h.stop(order[:n])
			return fmt.Errorf("service %s init failed: %w", e.svc.Name(), err)
		}
		log.Debug("Service initialized", "service", e.svc.Name())
	}
	return nil
}

// StartAll starts services in dependency order, stopping the started ones on failure
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = h.running[:0]
	for _, i := range h.order {
		svc := h.entries[i].svc
		if err := svc.Start(); err != nil {
			h.stop(h.running)
			h.running = nil
			return fmt.Errorf("service %s start failed: %w", svc.Name(), err)
		}
		h.running = append(h.running, i)
	}
	return nil
}

// StopAll stops running services in reverse start order; safe to repeat
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stop(h.running)
	h.running = nil
}

// stop calls Stop on ids last to first, logging failures
func (h *Hub) stop(ids []int) {
	for n := len(ids) - 1; n >= 0; n-- {
		svc := h.entries[ids[n]].svc
		if err := svc.Stop(); err != nil {
			log.Warn("Service stop failed", "service", svc.Name(), "err", err)
		}
	}
}

// Order returns service names in init order, nil before InitAll
func (h *Hub) Order() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		return nil
	}
	names := make([]string, len(h.order))
	for n, i := range h.order {
		names[n] = h.entries[i].svc.Name()
	}
	return names
}

// resolve orders entries depth-first so each service follows its dependencies
func (h *Hub) resolve() ([]int, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(h.entries))
	order := make([]int, 0, len(h.entries))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: at %s", ErrCycle, h.entries[i].svc.Name())
		}
		state[i] = visiting
		for _, dep := range h.entries[i].svc.Dependencies() {
			j, ok := h.index[dep]
			if !ok {
				return fmt.Errorf("%w: %s depends on %s", ErrMissingDependency, h.entries[i].svc.Name(), dep)
			}
			if err := visit(j); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}

	for i := range h.entries {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}
