package repository

import "github.com/okian/harf/pkg/logger"

// Option configures the sqlite store.
type Option func(*SQLiteStore)

// WithBusyTimeout sets the sqlite busy_timeout pragma in milliseconds.
func WithBusyTimeout(ms int) Option {
	return func(s *SQLiteStore) {
		if ms > 0 {
			s.busyTimeoutMS = ms
		}
	}
}

// WithLogger sets the store's logger.
func WithLogger(lg logger.Logger) Option {
	return func(s *SQLiteStore) {
		if lg != nil {
			s.logger = lg
		}
	}
}
