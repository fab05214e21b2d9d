package app

import (
	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRegistry injects a pre-built registry, bypassing seeding. Used by
// tests to supply fakes.
func WithRegistry(r repository.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithSeed replaces the built-in seed catalog.
func WithSeed(activities []model.Activity) Option {
	return func(s *Service) {
		if len(activities) > 0 {
			s.seed = activities
		}
	}
}

// WithCapacityEnforcement toggles roster capacity checks on signup.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enabled
	}
}
