package bookmarks

import (
	"context"
	"fmt"
	"sync"
)

// Registry manages all bookmark providers
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	order     []string
	configs   map[string]ProviderConfig
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		configs:   make(map[string]ProviderConfig),
	}
}

// Register adds a provider to the registry
func (r *Registry) Register(provider Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := provider.Name()
	if _, exists := r.providers[name]; exists {
		return fmt.Errorf("provider %s already registered", name)
	}

	r.providers[name] = provider
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a provider by name
func (r *Registry) Get(name string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	return provider, exists
}

// GetEnabled returns all enabled providers in registration order
func (r *Registry) GetEnabled() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var enabled []Provider
	for _, name := range r.order {
		if provider := r.providers[name]; provider.IsEnabled() {
			enabled = append(enabled, provider)
		}
	}
	return enabled
}

// List returns all registered provider names in registration order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Configure applies configuration to a provider
func (r *Registry) Configure(name string, config ProviderConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	provider, exists := r.providers[name]
	if !exists {
		return fmt.Errorf("provider %s not found", name)
	}

	if err := provider.Configure(config.Settings); err != nil {
		return fmt.Errorf("failed to configure provider %s: %v", name, err)
	}

	r.configs[name] = config
	return nil
}

// Collect gathers bookmarks from every enabled provider, preserving
// provider registration order and each provider's own ordering.
func (r *Registry) Collect(ctx context.Context) ([]Bookmark, error) {
	var all []Bookmark
	for _, provider := range r.GetEnabled() {
		marks, err := provider.GetBookmarks(ctx)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", provider.Name(), err)
		}
		all = append(all, marks...)
	}
	return all, nil
}
