package status

import "github.com/charmbracelet/log"

// Service exposes the shared Registry through the service hub
type Service struct {
	registry *Registry
}

func NewService() *Service {
	return &Service{registry: NewRegistry()}
}

func (s *Service) Name() string {
	return "status"
}

func (s *Service) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: *Registry - adopt an existing registry instead of the fresh one
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if reg, ok := args[0].(*Registry); ok && reg != nil {
			s.registry = reg
		}
	}
	return nil
}

func (s *Service) Start() error {
	return nil
}

// Stop logs the final counters
func (s *Service) Stop() error {
	log.Debug("Final status", "metrics", s.registry.Counters.Len(), "beats", s.registry.Counters.Get("rhythm.beats").Load())
	return nil
}

func (s *Service) Registry() *Registry {
	return s.registry
}
