package loader

import (
	"log/slog"
	"time"
)

// Option modifies Loader configuration
type Option func(*Loader)

// WithFileSystem sets a custom FileSystem implementation
func WithFileSystem(fs FileSystem) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithFileLockFactory sets a custom FileLockFactory implementation
func WithFileLockFactory(factory FileLockFactory) Option {
	return func(l *Loader) {
		l.lockFactory = factory
	}
}

// WithLogger sets the logger used for load diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithLockTimeout bounds how long a load waits for the shared lock
func WithLockTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.lockTimeout = timeout
	}
}

// WithFormat forces a format by name instead of picking one from the file extension
func WithFormat(name string) Option {
	return func(l *Loader) {
		l.format = name
	}
}
