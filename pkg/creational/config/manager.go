package config

import (
	"sync"
	"time"

	"github.com/randalmurphal/creational/pkg/creational/singleton"
)

// Manager holds the live configuration for a process. Load replaces the
// configuration atomically; readers always see either the previous or the
// new snapshot, never a partial one.
//
// The one Manager per process is obtained through Default. NewManager
// exists so callers get a typed rejection instead of silently minting a
// second configuration source.
type Manager struct {
	mu       sync.RWMutex
	cfg      Config
	source   string
	loadedAt time.Time
}

var (
	managerGuard  singleton.Guard
	managerHolder = singleton.NewHolder(newManager, singleton.WithName[Manager]("config manager"))
)

// newManager is the only legitimate construction path, reached through the
// holder. The guard makes any other path fail.
func newManager() (*Manager, error) {
	if err := managerGuard.Acquire(); err != nil {
		return nil, err
	}
	return &Manager{cfg: New(nil)}, nil
}

// Default returns the process-wide configuration manager, constructing it
// on first call. Safe for concurrent use; every caller receives the same
// instance.
func Default() (*Manager, error) {
	return managerHolder.Instance()
}

// NewManager always fails with singleton.ErrIllegalConstruction. The
// process-wide manager is reachable only through Default; rejecting every
// direct construction keeps a second configuration source from ever
// existing, even before the first Default call.
func NewManager() (*Manager, error) {
	return nil, singleton.ErrIllegalConstruction
}

// Load reads configuration from a file and replaces the current snapshot.
// On failure the previous snapshot stays in effect.
func (m *Manager) Load(path string) error {
	cfg, err := FromFile(path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	m.source = path
	m.loadedAt = time.Now().UTC()
	return nil
}

// LoadYAML replaces the current snapshot from raw YAML bytes.
func (m *Manager) LoadYAML(data []byte) error {
	cfg, err := FromYAML(data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	m.source = "inline-yaml"
	m.loadedAt = time.Now().UTC()
	return nil
}

// Config returns the current configuration snapshot.
func (m *Manager) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Source returns where the current snapshot was loaded from, empty if
// nothing has been loaded.
func (m *Manager) Source() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}

// LoadedAt returns when the current snapshot was loaded, zero if nothing
// has been loaded.
func (m *Manager) LoadedAt() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loadedAt
}
