// Package demo holds the runnable higher-order-function examples shown by
// the hof command. Each example computes one value from the go-hof
// packages; rendering is left to the caller.
package demo

import (
	"fmt"
	"sync"
)

// Example is one named, self-contained demonstration.
type Example struct {
	Section string
	Name    string
	Run     func() any
}

// Result is the value an [Example] produced.
type Result struct {
	Section string `json:"section" yaml:"section"`
	Name    string `json:"name" yaml:"name"`
	Value   any    `json:"value" yaml:"value"`
}

// Registry is a goroutine-safe, insertion-ordered set of examples.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Example
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Example)}
}

// Register adds ex. Returns [ErrDuplicateExample] if the name is taken.
func (r *Registry) Register(ex Example) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[ex.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateExample, ex.Name)
	}
	r.entries[ex.Name] = ex
	r.order = append(r.order, ex.Name)
	return nil
}

// MustRegister is [Registry.Register] that panics on error.
func (r *Registry) MustRegister(ex Example) {
	if err := r.Register(ex); err != nil {
		panic(err)
	}
}

// Lookup returns the example registered under name.
func (r *Registry) Lookup(name string) (Example, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ex, ok := r.entries[name]
	if !ok {
		return Example{}, fmt.Errorf("%w: %q", ErrUnknownExample, name)
	}
	return ex, nil
}

// Examples returns every example in registration order.
func (r *Registry) Examples() []Example {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Example, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Run executes the named examples in the order given, or every example in
// registration order when names is empty. All names are resolved before
// any example runs.
func (r *Registry) Run(names ...string) ([]Result, error) {
	var selected []Example
	if len(names) == 0 {
		selected = r.Examples()
	} else {
		for _, name := range names {
			ex, err := r.Lookup(name)
			if err != nil {
				return nil, err
			}
			selected = append(selected, ex)
		}
	}
	results := make([]Result, 0, len(selected))
	for _, ex := range selected {
		results = append(results, Result{Section: ex.Section, Name: ex.Name, Value: ex.Run()})
	}
	return results, nil
}
