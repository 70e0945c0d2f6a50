package service

import (
	"errors"
	"slices"
	"testing"
)

type fakeService struct {
	name    string
	deps    []string
	log     *[]string
	args    []any
	initErr error
	stops   int
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return nil
}
func (f *fakeService) Stop() error {
	f.stops++
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}
func (f *fakeService) Init(args ...any) error {
	f.args = args
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}

func TestHubDependencyOrder(t *testing.T) {
	var calls []string
	h := NewHub()
	web := &fakeService{name: "statusweb", deps: []string{"status", "songs"}, log: &calls}
	songs := &fakeService{name: "songs", log: &calls}
	st := &fakeService{name: "status", log: &calls}

	h.Register(web, ":8080")
	h.Register(songs, "SavedSongs")
	h.Register(st)

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	order := h.Order()
	if slices.Index(order, "statusweb") < slices.Index(order, "songs") || slices.Index(order, "statusweb") < slices.Index(order, "status") {
		t.Errorf("Expected statusweb after its dependencies, got %v", order)
	}
	if len(web.args) != 1 || web.args[0] != ":8080" {
		t.Errorf("Expected registered args passed to Init, got %v", web.args)
	}

	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	calls = nil
	h.StopAll()
	if calls[0] != "stop:statusweb" {
		t.Errorf("Expected dependents stopped first, got %v", calls)
	}

	calls = nil
	h.StopAll()
	if len(calls) != 0 {
		t.Errorf("Expected second StopAll to do nothing, got %v", calls)
	}
}

func TestHubErrors(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &calls})
	if err := h.Register(&fakeService{name: "a", log: &calls}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}

	h = NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"ghost"}, log: &calls})
	if err := h.InitAll(); !errors.Is(err, ErrMissingDependency) {
		t.Errorf("Expected ErrMissingDependency, got %v", err)
	}

	h = NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &calls})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &calls})
	if err := h.InitAll(); !errors.Is(err, ErrCycle) {
		t.Errorf("Expected ErrCycle, got %v", err)
	}
}

func TestHubInitRollback(t *testing.T) {
	var calls []string
	h := NewHub()
	first := &fakeService{name: "a", log: &calls}
	boom := errors.New("boom")
	h.Register(first)
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &calls, initErr: boom})

	if err := h.InitAll(); !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped init error, got %v", err)
	}
	if first.stops != 1 {
		t.Errorf("Expected initialized service stopped on rollback, got %d stops", first.stops)
	}
}

func TestHubRegistrationOrderWithoutDependencies(t *testing.T) {
	var calls []string
	h := NewHub()
	for _, name := range []string{"status", "audio", "songs"} {
		h.Register(&fakeService{name: name, log: &calls})
	}
	if h.Order() != nil {
		t.Error("Expected nil order before InitAll")
	}

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if got := h.Order(); !slices.Equal(got, []string{"status", "audio", "songs"}) {
		t.Errorf("Expected registration order, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &calls})

	if got, ok := Lookup[*fakeService](h, "a"); !ok || got.name != "a" {
		t.Errorf("Expected service a, got %v %v", got, ok)
	}
	if _, ok := Lookup[*fakeService](h, "missing"); ok {
		t.Error("Expected missing service not found")
	}
}
