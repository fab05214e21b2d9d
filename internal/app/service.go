// Package app provides the core service that implements the dependencies
// required by the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/internal/domain/seed"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// Service owns the activity registry and implements the API dependencies.
type Service struct {
	registry repository.Registry
	log      logger.Logger

	seed            []model.Activity
	enforceCapacity bool

	startedAt time.Time
}

// New constructs a Service with default configuration. Call Start before
// serving requests.
func New(opts ...Option) *Service {
	s := &Service{
		seed: seed.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the registry. A registry injected with WithRegistry is used
// as-is; otherwise an in-memory store is built from the seed catalog.
func (s *Service) Start(ctx context.Context) error {
	if s.log == nil {
		s.log = logger.Get().Named("service")
	}
	if s.registry == nil {
		store, err := repository.NewMemStore(s.seed, repository.WithCapacityEnforcement(s.enforceCapacity))
		if err != nil {
			return fmt.Errorf("seed registry: %w", err)
		}
		s.registry = store
	}
	s.startedAt = time.Now()

	s.log.Info(ctx, "registry seeded",
		logger.Int("activities", s.registry.Count(ctx)),
		logger.Any("enforce_capacity", s.enforceCapacity))
	return nil
}

// ListActivities returns the full catalog in insertion order.
func (s *Service) ListActivities(ctx context.Context) (model.Catalog, error) {
	return s.registry.List(ctx)
}

// Signup registers email for the named activity.
func (s *Service) Signup(ctx context.Context, activity, email string) (model.Activity, error) {
	a, err := s.registry.Signup(ctx, activity, email)
	if err != nil {
		metrics.RecordRejection(rejectionReason(err))
		s.log.Debug(ctx, "signup rejected",
			logger.String("activity", activity),
			logger.String("email", email),
			logger.Error(err))
		return model.Activity{}, err
	}

	metrics.RecordSignup()
	s.log.Info(ctx, "participant signed up",
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Int("roster_size", len(a.Participants)))
	return a, nil
}

// Unregister removes email from the named activity's roster.
func (s *Service) Unregister(ctx context.Context, activity, email string) (model.Activity, error) {
	a, err := s.registry.Unregister(ctx, activity, email)
	if err != nil {
		metrics.RecordRejection(rejectionReason(err))
		s.log.Debug(ctx, "unregister rejected",
			logger.String("activity", activity),
			logger.String("email", email),
			logger.Error(err))
		return model.Activity{}, err
	}

	metrics.RecordUnregistration()
	s.log.Info(ctx, "participant unregistered",
		logger.String("activity", activity),
		logger.String("email", email),
		logger.Int("roster_size", len(a.Participants)))
	return a, nil
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]any {
	ctx := context.Background()
	stats := map[string]any{
		"totalActivities": s.registry.Count(ctx),
		"uptimeSeconds":   int(time.Since(s.startedAt).Seconds()),
	}

	catalog, err := s.registry.List(ctx)
	if err != nil {
		return stats
	}
	var participants, spotsLeft int
	for i := range catalog {
		participants += len(catalog[i].Participants)
		spotsLeft += max(catalog[i].SpotsLeft(), 0)
	}
	stats["totalParticipants"] = participants
	stats["spotsRemaining"] = spotsLeft
	return stats
}

// rejectionReason maps registry errors to metric label values.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return "duplicate"
	case errors.Is(err, repository.ErrNotSignedUp):
		return "not_signed_up"
	case errors.Is(err, repository.ErrActivityFull):
		return "full"
	default:
		return "unknown"
	}
}
