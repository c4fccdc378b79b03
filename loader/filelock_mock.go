package loader

import (
	"context"
	"sync"
	"time"
)

// MockFileLock provides a mock implementation of FileLock for testing
type MockFileLock struct {
	mu          sync.Mutex
	readers     int
	lockError   error
	unlockError error
	held        bool

	// For tracking lock attempts
	LockAttempts   int
	UnlockAttempts int
}

// TryRLockContext implements FileLock.TryRLockContext
func (m *MockFileLock) TryRLockContext(ctx context.Context, retryInterval time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LockAttempts++

	if m.lockError != nil {
		return false, m.lockError
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Simulate a writer holding the file
	if m.held {
		return false, nil
	}

	m.readers++
	return true, nil
}

// Unlock implements FileLock.Unlock
func (m *MockFileLock) Unlock() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UnlockAttempts++

	if m.unlockError != nil {
		return m.unlockError
	}

	if m.readers > 0 {
		m.readers--
	}
	return nil
}

// Readers returns how many shared locks are currently held (for testing)
func (m *MockFileLock) Readers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readers
}

// SetHeld simulates an exclusive lock held by another process (for testing)
func (m *MockFileLock) SetHeld(held bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.held = held
}

// SetLockError sets an error to be returned on lock attempts (for testing)
func (m *MockFileLock) SetLockError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockError = err
}

// SetUnlockError sets an error to be returned on unlock attempts (for testing)
func (m *MockFileLock) SetUnlockError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlockError = err
}

// MockFileLockFactory creates MockFileLock instances
type MockFileLockFactory struct {
	mu    sync.Mutex
	locks map[string]*MockFileLock

	// Default errors to inject
	DefaultLockError   error
	DefaultUnlockError error
}

// NewMockFileLockFactory creates a new mock factory
func NewMockFileLockFactory() *MockFileLockFactory {
	return &MockFileLockFactory{
		locks: make(map[string]*MockFileLock),
	}
}

// New implements FileLockFactory.New
func (f *MockFileLockFactory) New(path string) FileLock {
	return f.GetLock(path)
}

// GetLock returns the mock lock for a path, creating it on first use
func (f *MockFileLockFactory) GetLock(path string) *MockFileLock {
	f.mu.Lock()
	defer f.mu.Unlock()

	if lock, exists := f.locks[path]; exists {
		return lock
	}

	lock := &MockFileLock{
		lockError:   f.DefaultLockError,
		unlockError: f.DefaultUnlockError,
	}
	f.locks[path] = lock
	return lock
}
