// Package loader reads enum definition documents from disk. The format is
// picked from the file extension through the formats registry, and every
// read happens under a shared file lock.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/arthur-debert/enumerated/enum"
	"github.com/arthur-debert/enumerated/formats"
)

const (
	// DefaultLockTimeout is how long a load waits for the shared lock
	DefaultLockTimeout = 3 * time.Second

	lockRetryInterval = 100 * time.Millisecond
)

// ErrLockUnavailable is returned when the shared lock could not be taken in time
var ErrLockUnavailable = errors.New("could not acquire file lock")

// Loader reads definition files
type Loader struct {
	fs          FileSystem
	lockFactory FileLockFactory
	logger      *slog.Logger
	lockTimeout time.Duration
	format      string
}

// New creates a Loader. Without options it reads from the OS file system,
// locks with flock and logs through slog.Default().
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:          OSFileSystem{},
		lockFactory: &FlockFactory{},
		logger:      slog.Default(),
		lockTimeout: DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds the Enum described by the file at path
func Load(ctx context.Context, path string, opts ...Option) (*enum.Enum, error) {
	return New(opts...).Load(ctx, path)
}

// Load builds the Enum described by the file at path
func (l *Loader) Load(ctx context.Context, path string) (*enum.Enum, error) {
	def, err := l.Definition(ctx, path)
	if err != nil {
		return nil, err
	}

	e, err := enum.New(def)
	if err != nil {
		l.logger.Debug("definition rejected", "path", path, "error", err)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("enum loaded", "path", path, "enum", e.Name(), "values", e.Len())
	return e, nil
}

// Definition decodes the file at path without building the Enum
func (l *Loader) Definition(ctx context.Context, path string) (enum.Definition, error) {
	format, err := l.formatFor(path)
	if err != nil {
		return enum.Definition{}, err
	}

	data, err := l.read(ctx, path)
	if err != nil {
		return enum.Definition{}, err
	}

	l.logger.Debug("decoding definition", "path", path, "format", format.Name, "bytes", len(data))

	def, err := formats.Decode(format.Name, data)
	if err != nil {
		return enum.Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// LoadAll loads every path in order and stops at the first failure
func (l *Loader) LoadAll(ctx context.Context, paths ...string) ([]*enum.Enum, error) {
	enums := make([]*enum.Enum, 0, len(paths))
	for _, path := range paths {
		e, err := l.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		enums = append(enums, e)
	}
	return enums, nil
}

func (l *Loader) formatFor(path string) (*formats.DefinitionFormat, error) {
	if l.format != "" {
		return formats.Get(l.format)
	}
	format, err := formats.ForExtension(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return format, nil
}

// read returns the file content while holding a shared lock on it
func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	// Check the file first: locking a missing file would create it
	if _, err := l.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("definition file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(ctx, l.lockTimeout)
	defer cancel()

	lock := l.lockFactory.New(path)
	locked, err := lock.TryRLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ErrLockUnavailable)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			l.logger.Warn("failed to release lock", "path", path, "error", err)
		}
	}()

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
