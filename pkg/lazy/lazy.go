// Package lazy provides init-once holders for process-wide clients.
package lazy

import "sync"

// Value initializes a shared value on first use and reuses the outcome,
// including a failed one. Configuration problems therefore surface at the
// first call that needs the client, not at process start, and are reported
// identically on every later call.
type Value[T any] struct {
	init func() (T, error)

	once  sync.Once
	value T
	err   error
}

// New wraps an initializer.
func New[T any](init func() (T, error)) *Value[T] {
	return &Value[T]{init: init}
}

// Get returns the initialized value, running the initializer exactly once.
// Safe for concurrent use.
func (v *Value[T]) Get() (T, error) {
	v.once.Do(func() {
		v.value, v.err = v.init()
	})
	return v.value, v.err
}
