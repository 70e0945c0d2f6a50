package service

import "errors"

var (
	ErrDuplicate         = errors.New("service already registered")
	ErrMissingDependency = errors.New("service depends on unregistered service")
	ErrCycle             = errors.New("circular dependency detected in services")
)
