package store

import (
	"leadrouter/internal/platform/logger"
)

// Option customizes the Store before the backends open.
type Option func(*Store) error

// WithLogger routes subclient logging through log instead of the zero logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
