package partition

import (
	"fmt"
	"sort"
	"sync"
)

// Factory is a registry of strategies keyed by name.
type Factory struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewFactory returns an empty Factory.
func NewFactory() *Factory {
	return &Factory{strategies: make(map[string]Strategy)}
}

// NewDefaultFactory registers Static and a Dynamic strategy using kind.
func NewDefaultFactory(kind CursorKind) *Factory {
	f := NewFactory()
	_ = f.Register(Static{})
	_ = f.Register(Dynamic{Cursor: kind})
	return f
}

// Register adds s under s.Name(). Names must be unique.
func (f *Factory) Register(s Strategy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.strategies[s.Name()]; exists {
		return fmt.Errorf("strategy %q already registered", s.Name())
	}
	f.strategies[s.Name()] = s
	return nil
}

// Get returns the strategy registered under name.
func (f *Factory) Get(name string) (Strategy, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return s, nil
}

// List returns the registered names in sorted order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.strategies))
	for name := range f.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
