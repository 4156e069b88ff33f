package verdict

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the classification policies available to an engine.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

// NewRegistry creates a registry with the built-in policies registered
func NewRegistry() *Registry {
	r := &Registry{policies: make(map[string]Policy)}
	for _, p := range Builtins() {
		r.policies[p.Name] = p
	}
	return r
}

// Register validates p and adds it, replacing any policy of the same name
func (r *Registry) Register(p Policy) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[p.Name] = p
	return nil
}

// Get looks up a policy by name
func (r *Registry) Get(name string) (Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[name]
	if !ok {
		return Policy{}, fmt.Errorf("unknown verdict policy: %s", name)
	}
	return p, nil
}

// List returns the registered policy names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Policies returns every registered policy sorted by name
func (r *Registry) Policies() []Policy {
	names := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Policy, 0, len(names))
	for _, name := range names {
		out = append(out, r.policies[name])
	}
	return out
}
