package gsim

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrModelExists   = errors.New("model already registered")
	ErrModelNotFound = errors.New("model not found")
)

// The model registry is an explicit, static mapping from name to
// constructor. Every shipped model registers itself at package init;
// there is no runtime discovery.
var modelRegistry = struct {
	mu sync.RWMutex
	m  map[string]func() Model
}{
	m: make(map[string]func() Model),
}

// RegisterModel adds a named constructor to the registry.
func RegisterModel(name string, construct func() Model) error {
	if name == "" {
		return errors.New("model name is required")
	}
	if construct == nil {
		return errors.New("model constructor is required")
	}

	modelRegistry.mu.Lock()
	defer modelRegistry.mu.Unlock()

	if _, exists := modelRegistry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrModelExists, name)
	}
	modelRegistry.m[name] = construct
	return nil
}

func mustRegisterModel(name string, construct func() Model) {
	if err := RegisterModel(name, construct); err != nil {
		panic(err)
	}
}

// GetModel constructs a registered model by name.
func GetModel(name string) (Model, error) {
	modelRegistry.mu.RLock()
	construct, ok := modelRegistry.m[name]
	modelRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return construct(), nil
}

// ListModels returns the registered model names, sorted.
func ListModels() []string {
	modelRegistry.mu.RLock()
	defer modelRegistry.mu.RUnlock()

	names := make([]string, 0, len(modelRegistry.m))
	for name := range modelRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
