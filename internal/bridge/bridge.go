// Package bridge implements the Runtime Bridge external contract of
// spec.md §4.7/§6.4: load an EmittedProgram into a JS evaluator once, then
// invoke `_result.<kind>(input)` per challenge and coerce the result to a
// string.
package bridge

import "fmt"

// Runtime is the contract every backend (goja, otto, ...) implements.
// A Runtime is not safe for concurrent use; callers that need to process
// requests concurrently must create one Runtime per goroutine.
type Runtime interface {
	// Load installs an empty `_result` object and evaluates program exactly
	// once. It must be called before any call to Solve.
	Load(program string) error

	// Solve evaluates `_result.<kind>(input)` and returns the coerced
	// string result.
	Solve(kind, input string) (string, error)
}

// Factory constructs a fresh, unloaded Runtime.
type Factory func() Runtime

var registry = map[string]Factory{}

// Register adds a named backend to the registry. Called from each
// backend's init().
func Register(name string, f Factory) {
	registry[name] = f
}

// New looks up a registered backend by name and constructs a fresh
// instance. Valid names are "goja" (the default) and "otto".
func New(name string) (Runtime, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("bridge: unknown runtime %q", name)
	}
	return f(), nil
}

// Names returns the registered backend names, for CLI usage text.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
