package caching

import "fmt"

// StoreError wraps a failure reported by the backing store.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("caching: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("caching: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
