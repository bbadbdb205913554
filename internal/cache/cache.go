package cache

// Cache is a single named cache region.
type Cache interface {
	// Get returns the value stored under key and true, or nil and false when
	// the key is absent or its entry has expired.
	Get(key string) (any, bool)

	// Put stores value under key, replacing any previous entry.
	Put(key string, value any)

	// Remove deletes the entry stored under key, if any.
	Remove(key string)
}

// Manager hands out cache regions by name. Implementations must be safe for
// concurrent use.
type Manager interface {
	// Cache returns the region with the given name, creating it on first use.
	Cache(region string) Cache
}
