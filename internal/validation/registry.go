package validation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// Outcome describes the result of checking one value. It never mutates the
// value checked.
type Outcome struct {
	Valid  bool   `json:"valid"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Rule is a numeric range. Each bound is open unless its inclusive flag is set.
type Rule struct {
	Min          decimal.Decimal
	Max          decimal.Decimal
	MinInclusive bool
	MaxInclusive bool
}

// Check reports whether v lies inside the range.
func (r Rule) Check(v decimal.Decimal) bool {
	if r.MinInclusive {
		if v.LessThan(r.Min) {
			return false
		}
	} else if v.LessThanOrEqual(r.Min) {
		return false
	}
	if r.MaxInclusive {
		return v.LessThanOrEqual(r.Max)
	}
	return v.LessThan(r.Max)
}

// String renders the range in interval notation, e.g. "(0, 35]".
func (r Rule) String() string {
	lo, hi := "(", ")"
	if r.MinInclusive {
		lo = "["
	}
	if r.MaxInclusive {
		hi = "]"
	}
	return fmt.Sprintf("%s%s, %s%s", lo, r.Min.String(), r.Max.String(), hi)
}

// Registry dispatches range checks by domain name.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// DefaultRegistry returns a registry holding the standard input domains.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("propertyPrice", Rule{Min: decimal.Zero, Max: decimal.NewFromInt(50000000)})
	r.Register("interestRate", Rule{Min: decimal.Zero, Max: decimal.NewFromInt(20), MinInclusive: true, MaxInclusive: true})
	r.Register("income", Rule{Min: decimal.Zero, Max: decimal.NewFromInt(1000000)})
	r.Register("age", Rule{Min: decimal.NewFromInt(16), Max: decimal.NewFromInt(100), MinInclusive: true, MaxInclusive: true})
	r.Register("tenure", Rule{Min: decimal.Zero, Max: decimal.NewFromInt(35), MaxInclusive: true})
	r.Register("loanAmount", Rule{Min: decimal.Zero, Max: decimal.NewFromInt(10000000)})
	return r
}

// Register adds or replaces the rule for a domain.
func (r *Registry) Register(name string, rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[name] = rule
}

// Rule returns the rule registered for a domain.
func (r *Registry) Rule(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	return rule, ok
}

// Has reports whether a domain is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Rule(name)
	return ok
}

// Names returns the registered domains in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for n := range r.rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate checks value against the named domain. Values of unregistered
// domains are accepted.
func (r *Registry) Validate(name string, value decimal.Decimal) Outcome {
	rule, ok := r.Rule(name)
	if !ok {
		return Outcome{Valid: true, Field: name}
	}
	if rule.Check(value) {
		return Outcome{Valid: true, Field: name}
	}
	return Outcome{
		Valid:  false,
		Field:  name,
		Reason: fmt.Sprintf("%s must be within %s", value.String(), rule),
	}
}
