package cache

// DisabledManager is a [Manager] whose regions never retain anything.
type DisabledManager struct{}

// NewDisabledManager returns the manager installed when caching is switched off.
func NewDisabledManager() *DisabledManager {
	return &DisabledManager{}
}

// Cache implements [Manager].
func (DisabledManager) Cache(string) Cache {
	return disabledCache{}
}

type disabledCache struct{}

func (disabledCache) Get(string) (any, bool) { return nil, false }
func (disabledCache) Put(string, any)        {}
func (disabledCache) Remove(string)          {}
