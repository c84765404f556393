package source

import (
	"slices"
	"sync"
)

// Cache holds file content by cleaned name. It is safe for concurrent use
// and never evicts; a later Put replaces earlier content.
type Cache struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewCache() *Cache {
	return &Cache{files: map[string][]byte{}}
}

// Get implements token.Source.
func (c *Cache) Get(name string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.files[CleanPath(name)]
	return d, ok
}

func (c *Cache) Put(name string, d []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.files == nil {
		c.files = map[string][]byte{}
	}
	c.files[CleanPath(name)] = d
}

// Delete forgets name, so that the next parse requests it again.
func (c *Cache) Delete(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, CleanPath(name))
}

// Names returns the cached names in sorted order.
func (c *Cache) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([]string, 0, len(c.files))
	for name := range c.files {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
