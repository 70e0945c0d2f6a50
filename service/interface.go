package service

// Service is a long-lived process component driven by the Hub
// Init receives the args given at registration; Stop must be idempotent
type Service interface {
	Name() string

	// Dependencies names services that must Init and Start first
	Dependencies() []string

	Init(args ...any) error
	Start() error
	Stop() error
}
