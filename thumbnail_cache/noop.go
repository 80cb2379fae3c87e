package thumbnail_cache

type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(name string) ([]byte, bool) {
	recordLookup(false)
	return nil, false
}

func (n *NoopCache) Put(name string, thumbnail []byte) {
	// do nothing
}

func (n *NoopCache) Reset() {
	// do nothing
}

func (n *NoopCache) Stop() {
	// do nothing
}
