// Package catalog keeps a process-wide registry of constructed enums, keyed
// by type name. Enums are usually registered once during initialisation:
//
//	var StepType = catalog.MustRegister(enum.MustNew(stepTypeDefinition))
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/arthur-debert/enumerated/enum"
	"github.com/arthur-debert/enumerated/loader"
)

var (
	// ErrAlreadyRegistered is returned when a type name is registered twice
	ErrAlreadyRegistered = errors.New("enum already registered")

	// ErrNotRegistered is returned when a type name is unknown
	ErrNotRegistered = errors.New("enum not registered")
)

// Default is the catalog used by the package-level functions
var Default = New()

// Catalog is a concurrency-safe set of enums indexed by type name
type Catalog struct {
	mu     sync.RWMutex
	enums  map[string]*enum.Enum
	logger *slog.Logger
}

// Option modifies Catalog configuration
type Option func(*Catalog)

// WithLogger sets the logger used for registration events
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// New creates an empty catalog
func New(opts ...Option) *Catalog {
	c := &Catalog{
		enums:  make(map[string]*enum.Enum),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds e under its type name
func (c *Catalog) Register(e *enum.Enum) error {
	if e == nil {
		return errors.New("cannot register a nil enum")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.enums[e.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, e.Name())
	}
	c.enums[e.Name()] = e

	c.logger.Debug("enum registered", "enum", e.Name(), "kind", e.Kind().String(), "values", e.Len())
	return nil
}

// MustRegister is like Register but panics on error. It returns e so that
// registration can be part of a variable declaration.
func (c *Catalog) MustRegister(e *enum.Enum) *enum.Enum {
	if err := c.Register(e); err != nil {
		panic(err)
	}
	return e
}

// Get returns the enum registered under name
func (c *Catalog) Get(name string) (*enum.Enum, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.enums[name]
	return e, ok
}

// MustGet is like Get but panics when name is not registered
func (c *Catalog) MustGet(name string) *enum.Enum {
	e, ok := c.Get(name)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrNotRegistered, name))
	}
	return e
}

// Names returns the registered type names, sorted
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.enums))
	for name := range c.enums {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enums returns the registered enums sorted by type name
func (c *Catalog) Enums() []*enum.Enum {
	names := c.Names()

	c.mu.RLock()
	defer c.mu.RUnlock()

	enums := make([]*enum.Enum, 0, len(names))
	for _, name := range names {
		if e, ok := c.enums[name]; ok {
			enums = append(enums, e)
		}
	}
	return enums
}

// Len returns the number of registered enums
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.enums)
}

// LoadFiles loads each definition file with l and registers the result.
// It stops at the first file that fails to load or register.
func (c *Catalog) LoadFiles(ctx context.Context, l *loader.Loader, paths ...string) error {
	for _, path := range paths {
		e, err := l.Load(ctx, path)
		if err != nil {
			return err
		}
		if err := c.Register(e); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// Register adds e to the Default catalog
func Register(e *enum.Enum) error {
	return Default.Register(e)
}

// MustRegister adds e to the Default catalog and returns it
func MustRegister(e *enum.Enum) *enum.Enum {
	return Default.MustRegister(e)
}

// Get returns the enum registered under name in the Default catalog
func Get(name string) (*enum.Enum, bool) {
	return Default.Get(name)
}

// MustGet returns the enum registered under name in the Default catalog
func MustGet(name string) *enum.Enum {
	return Default.MustGet(name)
}
