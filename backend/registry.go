package backend

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/ink"
)

// Factory creates a backend that renders into target. Backends that do not
// draw into CPU memory may ignore target. A factory returns nil when the
// backend cannot run on this system.
type Factory func(target *ink.Pixmap) Backend

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU rasterizer.
	BackendSoftware = "software"
	// BackendGPU is the name reserved for an externally provided GPU backend.
	BackendGPU = "gpu"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default (first available wins).
	backendPriority = []string{BackendGPU, BackendSoftware}
)

// Register registers a backend factory with the given name, replacing any
// previous registration.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a backend from the registry.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get creates the named backend bound to target.
func Get(name string, target *ink.Pixmap) (Backend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	b := factory(target)
	if b == nil {
		return nil, fmt.Errorf("%w: %q declined", ErrBackendNotAvailable, name)
	}
	return b, nil
}

// Default creates the best available backend bound to target, following
// the priority order and then name order. It returns nil if no registered
// backend is usable.
func Default(target *ink.Pixmap) Backend {
	registryMu.RLock()
	order := slices.Clone(backendPriority)
	for name := range factories {
		if !slices.Contains(order, name) {
			order = append(order, name)
		}
	}
	registryMu.RUnlock()
	slices.Sort(order[len(backendPriority):])

	for _, name := range order {
		b, err := Get(name, target)
		if err == nil {
			slogger().Debug("backend: selected", "backend", name)
			return b
		}
		if IsRegistered(name) {
			slogger().Warn("backend: unavailable, trying next", "backend", name, "err", err)
		}
	}
	return nil
}
