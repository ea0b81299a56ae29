package lint

import "sync"

// RuleInfo is a registry listing entry.
type RuleInfo struct {
	Name        string `json:"name"`
	Alias       string `json:"alias"`
	Description string `json:"description"`
}

// Registry holds the fixed catalog of lint rules in registration order.
// Registration order is the engine's rule order: it drives both the
// deterministic check output and the overlap-conflict policy during fix.
type Registry struct {
	mu      sync.RWMutex
	ordered []Rule
	byName  map[string]Rule
	byAlias map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Rule),
		byAlias: make(map[string]Rule),
	}
}

// Register adds a rule to the registry. Registering a name twice replaces
// the earlier rule but keeps its position in the order.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[rule.Name()]; exists {
		for i, existing := range r.ordered {
			if existing.Name() == rule.Name() {
				r.ordered[i] = rule
				break
			}
		}
	} else {
		r.ordered = append(r.ordered, rule)
	}
	r.byName[rule.Name()] = rule
	r.byAlias[rule.Alias()] = rule
}

// Get retrieves a rule by name, falling back to alias lookup.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	if rule, ok := r.byAlias[key]; ok {
		return rule, true
	}
	return nil, false
}

// Has reports whether a rule name or alias is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// List returns listing entries for all rules, stable across calls.
func (r *Registry) List() []RuleInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]RuleInfo, 0, len(r.ordered))
	for _, rule := range r.ordered {
		infos = append(infos, RuleInfo{
			Name:        rule.Name(),
			Alias:       rule.Alias(),
			Description: rule.Description(),
		})
	}
	return infos
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init(); the registry is never
// mutated after process start.
//
//nolint:gochecknoglobals // global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
