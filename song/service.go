package song

// Service wraps Registry as a service.Service
type Service struct {
	registry *Registry
}

// NewService creates a song service for the given directory
func NewService(dir string) *Service {
	return &Service{registry: NewRegistry(dir)}
}

// Name implements Service
func (s *Service) Name() string {
	return "songs"
}

// Dependencies implements Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements Service, loads every song record from the directory
func (s *Service) Init(args ...any) error {
	return s.registry.Load()
}

// Start implements Service
func (s *Service) Start() error {
	return nil
}

// Stop implements Service
func (s *Service) Stop() error {
	return nil
}

// Registry returns the loaded registry
func (s *Service) Registry() *Registry {
	return s.registry
}
