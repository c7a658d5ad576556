package backend

import (
	"errors"
	"sync"

	view "github.com/s3bk/pathfinder-view"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no usable backend is
	// registered for this build target.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before the
	// backend window exists.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend names.
const (
	// Native is the windowed desktop backend.
	Native = "native"
	// Web is the browser canvas backend (js/wasm builds only).
	Web = "web"
	// Headless is the offscreen pixmap backend for tests and
	// server-side rasterization.
	Headless = "headless"
)

// Factory creates a backend instance for one session.
type Factory func(cfg view.Config) (view.Backend, error)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	priority = []string{Native, Web, Headless}
)

// Register registers a backend factory with the given name. This is
// typically called from init() functions in backend packages. A backend
// with the same name replaces the previous registration.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get creates a backend instance by name.
func Get(name string, cfg view.Config) (view.Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrBackendNotAvailable
	}
	return factory(cfg)
}

// Default creates the best available backend based on priority, falling
// back to any registered backend.
func Default(cfg view.Config) (view.Backend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := backends[name]; ok {
			if b, err := factory(cfg); err == nil {
				return b, nil
			}
		}
	}
	for _, factory := range backends {
		if b, err := factory(cfg); err == nil {
			return b, nil
		}
	}
	return nil, ErrBackendNotAvailable
}
