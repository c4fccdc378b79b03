package loader

import (
	"context"
	"os"
	"time"

	"github.com/gofrs/flock"
)

// FileLock defines the interface for file locking operations
type FileLock interface {
	// TryRLockContext attempts to acquire a shared lock with retries
	TryRLockContext(ctx context.Context, retryInterval time.Duration) (bool, error)

	// Unlock releases the lock
	Unlock() error
}

// FileLockFactory creates FileLock instances
type FileLockFactory interface {
	// New creates a new FileLock for the given path
	New(path string) FileLock
}

// FlockWrapper wraps github.com/gofrs/flock for our interface
type FlockWrapper struct {
	flock *flock.Flock
}

// TryRLockContext implements FileLock.TryRLockContext
func (f *FlockWrapper) TryRLockContext(ctx context.Context, retryInterval time.Duration) (bool, error) {
	return f.flock.TryRLockContext(ctx, retryInterval)
}

// Unlock implements FileLock.Unlock
func (f *FlockWrapper) Unlock() error {
	return f.flock.Unlock()
}

// FlockFactory is the default factory implementation using flock.
// Locks are taken on the definition file itself, so editors that hold an
// exclusive flock on it block readers until they are done.
type FlockFactory struct{}

// New implements FileLockFactory.New
func (f *FlockFactory) New(path string) FileLock {
	return &FlockWrapper{
		flock: flock.New(path, flock.SetFlag(os.O_RDONLY)),
	}
}
