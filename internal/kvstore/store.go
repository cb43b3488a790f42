package kvstore

// Store is the persistence boundary for everything the engine keeps between
// runs (dataset cache, favorites, theme). Implementations never panic past
// this boundary: Get and Delete degrade to a logged no-op on failure, Set
// reports quota problems after one evict-and-retry pass.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool)

	// Set stores value under key. When the store is over budget it deletes
	// the caller-designated evictable keys and retries exactly once; if the
	// retry also fails the error (wrapping domain.ErrQuotaExceeded) is
	// returned to the caller.
	Set(key, value string, evictable ...string) error

	// Delete removes key. Removing an absent key is a no-op.
	Delete(key string)
}
