// Package clipboard stores copied text, preferring the system clipboard and
// keeping an internal register for terminals where it is unavailable.
package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/quill/internal/logger"
)

// Provider is a text clipboard backend.
type Provider interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System talks to the OS clipboard through xclip/xsel/wl-clipboard, pbcopy or
// the Windows API.
type System struct{}

func (System) ReadAll() (string, error)   { return sysclip.ReadAll() }
func (System) WriteAll(text string) error { return sysclip.WriteAll(text) }

// Manager copies to and pastes from a provider, mirroring every copy into an
// internal register.
type Manager struct {
	provider Provider // nil when only the register is used
	register string
	mutex    sync.Mutex
}

// NewManager returns a manager using the system clipboard when useSystem is
// true and the platform supports it.
func NewManager(useSystem bool) *Manager {
	if useSystem && sysclip.Unsupported {
		logger.Warnf("System clipboard unsupported on this platform, using internal register")
		useSystem = false
	}
	if !useSystem {
		return NewManagerWithProvider(nil)
	}
	return NewManagerWithProvider(System{})
}

// NewManagerWithProvider returns a manager backed by p. A nil p keeps text
// only in the internal register.
func NewManagerWithProvider(p Provider) *Manager {
	return &Manager{provider: p}
}

// Copy stores text. The register is always updated; an error is returned only
// if the provider rejected the write.
func (m *Manager) Copy(text string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.register = text
	if m.provider == nil {
		return nil
	}
	if err := m.provider.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: system write failed, kept internal copy: %v", err)
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	logger.DebugTagf("clipboard", "Copied %d bytes", len(text))
	return nil
}

// Text returns the current clipboard content. The provider wins when it has
// text; otherwise the internal register is used.
func (m *Manager) Text() (string, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.provider != nil {
		text, err := m.provider.ReadAll()
		if err == nil && text != "" {
			return text, true
		}
		if err != nil {
			logger.DebugTagf("clipboard", "System read failed, using register: %v", err)
		}
	}
	return m.register, m.register != ""
}
