package caching

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking; wrap slow sinks with
// hooks/async.
type Hooks interface {
	// An operation was skipped because the availability gate is closed.
	Unavailable(op string)

	// A stored payload could not be decoded into the requested type
	// and was reported as a miss.
	DecodeFailed(key string, err error)

	// The store returned a transport or command error.
	StoreError(op, storageKey string, err error)

	// A bounded sorted set dropped its lowest-scored members after an insert.
	SortedSetTrimmed(storageKey string, removed int64)

	// A key was overwritten with an empty, short-lived value.
	SoftDeleted(storageKey string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Unavailable(string)               {}
func (NopHooks) DecodeFailed(string, error)       {}
func (NopHooks) StoreError(string, string, error) {}
func (NopHooks) SortedSetTrimmed(string, int64)   {}
func (NopHooks) SoftDeleted(string)               {}
