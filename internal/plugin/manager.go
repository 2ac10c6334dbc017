// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sync"

	"github.com/bethropolis/quill/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
// Plugins are initialized and shut down in registration order.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = p
	m.order = append(m.order, name)
	logger.DebugTagf("plugin", "Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin. A failing
// plugin is logged and skipped; the rest still initialize. The number of
// failures is returned.
func (m *Manager) InitializePlugins(api EditorAPI) int {
	failed := 0
	for _, p := range m.snapshot() {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: initializing plugin '%s': %v", p.Name(), err)
			failed++
			continue
		}
		logger.DebugTagf("plugin", "Initialized plugin '%s'", p.Name())
	}
	return failed
}

// ShutdownPlugins calls Shutdown on all registered plugins.
func (m *Manager) ShutdownPlugins() {
	for _, p := range m.snapshot() {
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

// snapshot copies the plugin list so plugin code runs without the lock.
func (m *Manager) snapshot() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		list = append(list, m.plugins[name])
	}
	return list
}
