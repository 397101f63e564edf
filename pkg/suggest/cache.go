// Package suggest implements the contextual suggestion cache. Commands
// put short follow-up hints here (keyed, so repeated runs overwrite
// rather than accumulate); the CLI surfaces the active ones after a
// command finishes. Dismissals are append-only: once a key is dismissed
// it stays dismissed for the lifetime of the cache, even if the
// suggestion is put again.
package suggest

import (
	"sort"
	"sync"
)

// Suggestion is one actionable hint surfaced to the user
type Suggestion struct {
	// Key identifies the suggestion; putting the same key twice
	// replaces the earlier entry
	Key string `json:"key"`

	// Message is the human-readable hint
	Message string `json:"message"`

	// Command optionally names a CLI invocation that acts on the hint
	Command string `json:"command,omitempty"`
}

// Cache is a keyed suggestion store safe for concurrent use
type Cache struct {
	mu        sync.Mutex
	enabled   bool
	entries   map[string]Suggestion
	dismissed map[string]bool
}

// NewCache returns an enabled, empty cache
func NewCache() *Cache {
	return &Cache{
		enabled:   true,
		entries:   map[string]Suggestion{},
		dismissed: map[string]bool{},
	}
}

// SetEnabled toggles the cache. A disabled cache accepts writes but
// surfaces nothing.
func (c *Cache) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// Enabled reports whether suggestions are surfaced
func (c *Cache) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Put stores a suggestion under its key, replacing any earlier entry
func (c *Cache) Put(s Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[s.Key] = s
}

// Get returns the suggestion for key. Disabled caches and dismissed
// keys yield nothing.
func (c *Cache) Get(key string) (Suggestion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled || c.dismissed[key] {
		return Suggestion{}, false
	}
	s, ok := c.entries[key]
	return s, ok
}

// Dismiss permanently hides a key. Dismissing an unknown key is not an
// error; the key stays hidden if it is put later.
func (c *Cache) Dismiss(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dismissed[key] = true
}

// Dismissed reports whether a key has been dismissed
func (c *Cache) Dismissed(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dismissed[key]
}

// Active returns every surfaced suggestion sorted by key. A disabled
// cache yields nothing.
func (c *Cache) Active() []Suggestion {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return nil
	}

	var active []Suggestion
	for key, s := range c.entries {
		if c.dismissed[key] {
			continue
		}
		active = append(active, s)
	}

	sort.Slice(active, func(i, j int) bool {
		return active[i].Key < active[j].Key
	})
	return active
}
