// Package assets loads the scene's glTF models off the frame loop and hands
// them back through channels.
package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/Faultbox/tideline/internal/engine/model"
)

// Manager resolves model paths and caches decoded meshes.
type Manager struct {
	root  string
	cache *Cache
	load  func(path string) (*model.Mesh, error)
}

// NewManager creates a manager that resolves relative paths against root.
func NewManager(root string) *Manager {
	return &Manager{
		root:  root,
		cache: NewCache(),
		load:  LoadMesh,
	}
}

// Resolve returns the on-disk location of path.
func (m *Manager) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || m.root == "" {
		return path
	}
	return filepath.Join(m.root, path)
}

// Load returns the mesh at path, decoding it on first use.
func (m *Manager) Load(path string) (*model.Mesh, error) {
	full := m.Resolve(path)
	if full == "" {
		return nil, fmt.Errorf("empty model path")
	}
	if mesh, ok := m.cache.Get(full); ok {
		return mesh, nil
	}
	mesh, err := m.load(full)
	if err != nil {
		return nil, err
	}
	m.cache.Set(full, mesh)
	return mesh, nil
}

// Cache returns the mesh cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Close drops every cached mesh.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is an in-memory cache of decoded meshes. Meshes are read-only once
// cached and may be shared between models.
type Cache struct {
	data map[string]*model.Mesh
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*model.Mesh),
	}
}

// Get retrieves a mesh from the cache.
func (c *Cache) Get(key string) (*model.Mesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mesh, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return mesh, ok
}

// Set stores a mesh in the cache.
func (c *Cache) Set(key string, mesh *model.Mesh) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = mesh
}

// Clear empties the cache and resets its stats.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*model.Mesh)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
