package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithCapacityEnforcement makes Signup reject emails once a roster reaches
// max_participants. Off by default: the observed contract admits signups
// past capacity.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *MemStore) {
		s.enforceCapacity = enabled
	}
}
